package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/forum-dev/forum-api/internal/middleware"
)

type addCommentRequest struct {
	Content any `json:"content"`
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := mux.Vars(r)["threadId"]

	var body addCommentRequest
	if err := decode(r, &body); err != nil {
		writeError(w, internal_errors.NewCommentMissingProperty)
		return
	}

	added, err := h.comments.Add(domain.CommentPayload{
		Content:  body.Content,
		ThreadId: threadId,
		Owner:    user.Id,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	err := h.comments.Delete(domain.DeleteCommentPayload{
		ThreadId:  vars["threadId"],
		CommentId: vars["commentId"],
	}, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
