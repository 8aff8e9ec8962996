package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/forum-dev/forum-api/internal/middleware"
)

type createThreadRequest struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body createThreadRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.NewThreadMissingProperty)
		return
	}

	added, err := h.threads.Create(domain.ThreadPayload{
		Title: body.Title,
		Body:  body.Body,
	}, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedThread": added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["threadId"]

	thread, err := h.threads.Detail(domain.ThreadDetailPayload{ThreadId: threadId})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"thread": thread})
}
