package handler

import (
	"net/http"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type loginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken any `json:"refreshToken"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.UserLoginMissingProperty)
		return
	}

	tokens, err := h.auth.Login(domain.UserLoginPayload{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, tokens)
}

func (h *Handler) RefreshAuth(w http.ResponseWriter, r *http.Request) {
	var body refreshTokenRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.RefreshAuthMissingToken)
		return
	}

	accessToken, err := h.auth.Refresh(domain.RefreshAuthPayload{RefreshToken: body.RefreshToken})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body refreshTokenRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.DeleteAuthMissingToken)
		return
	}

	if err := h.auth.Logout(domain.DeleteAuthPayload{RefreshToken: body.RefreshToken}); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
