package domain

import (
	"time"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

// ThreadPayload carries raw input for thread creation. Fields are untyped
// because the boundary passes request data through without interpreting it.
type ThreadPayload struct {
	Title any
	Body  any
}

// NewThread is a validated thread-creation input.
type NewThread struct {
	Title string
	Body  string
}

// ParseNewThread validates the payload and returns the entity or a domain
// error. No partially-constructed value is ever returned.
func ParseNewThread(p ThreadPayload) (NewThread, error) {
	if !present(p.Title) || !present(p.Body) {
		return NewThread{}, internal_errors.NewThreadMissingProperty
	}
	title, titleOk := asString(p.Title)
	body, bodyOk := asString(p.Body)
	if !titleOk || !bodyOk {
		return NewThread{}, internal_errors.NewThreadTypeMismatch
	}
	return NewThread{Title: title, Body: body}, nil
}

// AddedThreadPayload carries the freshly persisted row attributes.
type AddedThreadPayload struct {
	Id    any
	Title any
	Owner any
}

// AddedThread is the output projection of thread creation.
type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func ParseAddedThread(p AddedThreadPayload) (AddedThread, error) {
	if !present(p.Id) || !present(p.Title) || !present(p.Owner) {
		return AddedThread{}, internal_errors.AddedThreadMissingProperty
	}
	id, idOk := asString(p.Id)
	owner, ownerOk := asString(p.Owner)
	title, titleOk := asString(p.Title)
	if !idOk || !ownerOk || !titleOk {
		return AddedThread{}, internal_errors.AddedThreadTypeMismatch
	}
	return AddedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is a thread joined against its owner, with comments attached
// by the detail workflow.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// ThreadDetailPayload carries raw input for the detail lookup.
type ThreadDetailPayload struct {
	ThreadId any
}

// ParseThreadDetailId validates the lookup payload and returns the thread id.
func ParseThreadDetailId(p ThreadDetailPayload) (string, error) {
	if !present(p.ThreadId) {
		return "", internal_errors.DetailThreadMissingThreadId
	}
	id, ok := asString(p.ThreadId)
	if !ok {
		return "", internal_errors.DetailThreadTypeMismatch
	}
	return id, nil
}
