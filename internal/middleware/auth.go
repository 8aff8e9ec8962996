package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/forum-dev/forum-api/internal/domain"
	"github.com/forum-dev/forum-api/internal/jwt"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid access token
// in the Authorization header and stores the user in the context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				writeAuthError(w, "Missing authentication")
				return
			}

			user, err := a.jwtService.VerifyAccessToken(tokenString)
			if err != nil {
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status":"fail","message":"` + message + `"}`))
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.AuthUser {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.AuthUser)
	if !ok {
		return nil
	}
	return user
}
