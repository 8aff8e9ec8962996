package handler

import (
	"net/http"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type registerUserRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
	Fullname any `json:"fullname"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body registerUserRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.RegisterUserMissingProperty)
		return
	}

	added, err := h.users.Register(domain.RegisterUserPayload{
		Username: body.Username,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedUser": added})
}
