package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forum-dev/forum-api/internal/logger"
	"github.com/forum-dev/forum-api/internal/service"
)

type Handler struct {
	users    service.UserService
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	health   Pinger
}

func New(users service.UserService, auth service.AuthService, threads service.ThreadService, comments service.CommentService, health Pinger) *Handler {
	return &Handler{users, auth, threads, comments, health}
}

// response is the envelope every endpoint answers with.
type response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type statusCoder interface {
	StatusCode() int
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, response{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	if e, ok := err.(statusCoder); ok {
		writeJSON(w, e.StatusCode(), response{Status: "fail", Message: err.Error()})
		return
	}
	// unexpected errors stay opaque to clients
	logger.Log.Error("server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, response{
		Status:  "error",
		Message: "terjadi kegagalan pada server kami",
	})
}

func decode(r *http.Request, body any) error {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return err
	}
	return nil
}
