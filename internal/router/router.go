// Package router wires HTTP routes to handlers.
package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forum-dev/forum-api/internal/middleware/metrics"
	"github.com/forum-dev/forum-api/internal/setup"
)

// New creates and configures a mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/users", h.RegisterUser).Methods("POST")

	r.HandleFunc("/authentications", h.Login).Methods("POST")
	r.HandleFunc("/authentications", h.RefreshAuth).Methods("PUT")
	r.HandleFunc("/authentications", h.Logout).Methods("DELETE")

	r.HandleFunc("/threads/{threadId}", h.GetThread).Methods("GET")

	// Logged-in routes
	loggedIn := r.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())
	loggedIn.HandleFunc("/threads", h.CreateThread).Methods("POST")
	loggedIn.HandleFunc("/threads/{threadId}/comments", h.AddComment).Methods("POST")
	loggedIn.HandleFunc("/threads/{threadId}/comments/{commentId}", h.DeleteComment).Methods("DELETE")

	return r
}
