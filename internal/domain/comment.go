package domain

import (
	"time"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

// CommentPayload carries raw input for comment creation. ThreadId and Owner
// come from the path and the authenticated user, so they are already strings;
// only Content originates from the request body.
type CommentPayload struct {
	Content  any
	ThreadId string
	Owner    string
}

// NewComment is a validated comment-creation input. ThreadId and Owner are
// carried through unvalidated; the workflow checks them against the store.
type NewComment struct {
	Content  string
	ThreadId string
	Owner    string
}

func ParseNewComment(p CommentPayload) (NewComment, error) {
	if !present(p.Content) {
		return NewComment{}, internal_errors.NewCommentMissingProperty
	}
	content, ok := asString(p.Content)
	if !ok {
		return NewComment{}, internal_errors.NewCommentTypeMismatch
	}
	return NewComment{Content: content, ThreadId: p.ThreadId, Owner: p.Owner}, nil
}

// AddedCommentPayload carries the freshly persisted row attributes.
type AddedCommentPayload struct {
	Id      any
	Content any
	Owner   any
}

// AddedComment is the output projection of comment creation.
type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func ParseAddedComment(p AddedCommentPayload) (AddedComment, error) {
	if !present(p.Id) || !present(p.Content) || !present(p.Owner) {
		return AddedComment{}, internal_errors.AddedCommentMissingProperty
	}
	id, idOk := asString(p.Id)
	owner, ownerOk := asString(p.Owner)
	if !idOk || !ownerOk {
		return AddedComment{}, internal_errors.AddedCommentTypeMismatch
	}
	content, _ := asString(p.Content)
	return AddedComment{Id: id, Content: content, Owner: owner}, nil
}

// CommentRow is what the repository returns for a thread's comments. The
// delete flag never leaves the service layer.
type CommentRow struct {
	Id       string
	Username string
	Date     time.Time
	Content  string
	IsDelete bool
}

// CommentDetail is the display projection of a comment.
type CommentDetail struct {
	Id       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

// DeleteCommentPayload carries raw input for comment deletion.
type DeleteCommentPayload struct {
	ThreadId  any
	CommentId any
}

// ParseDeleteComment validates identifiers before any repository call.
func ParseDeleteComment(p DeleteCommentPayload) (threadId, commentId string, err error) {
	if !present(p.ThreadId) || !present(p.CommentId) {
		return "", "", internal_errors.DeleteCommentMissingIds
	}
	threadId, threadOk := asString(p.ThreadId)
	commentId, commentOk := asString(p.CommentId)
	if !threadOk || !commentOk {
		return "", "", internal_errors.DeleteCommentTypeMismatch
	}
	return threadId, commentId, nil
}
