package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
)

type CommentService interface {
	Add(payload domain.CommentPayload) (domain.AddedComment, error)
	Delete(payload domain.DeleteCommentPayload, owner string) error
}

type Comment struct {
	comments CommentRepository
	threads  ThreadRepository
}

// CommentRepository is the store capability set the comment workflows depend on.
type CommentRepository interface {
	AddComment(comment domain.NewComment) (domain.AddedComment, error)
	CheckCommentAvailability(commentId string) error
	VerifyCommentOwner(commentId, owner string) error
	DeleteComment(commentId string) error
	GetCommentsByThreadId(threadId string) ([]domain.CommentRow, error)
}

func NewComment(comments CommentRepository, threads ThreadRepository) CommentService {
	return &Comment{comments: comments, threads: threads}
}

// Add persists a comment after confirming the thread exists, so no comment
// can ever be created against a nonexistent thread.
func (s *Comment) Add(payload domain.CommentPayload) (domain.AddedComment, error) {
	comment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threads.CheckAvailabilityThread(comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	return s.comments.AddComment(comment)
}

// Delete soft-deletes a comment. Each check gates the next; a failure
// short-circuits before any mutation happens. Existence and ownership are
// separate queries so the caller gets a precise error category instead of an
// ambiguous "0 rows affected".
func (s *Comment) Delete(payload domain.DeleteCommentPayload, owner string) error {
	threadId, commentId, err := domain.ParseDeleteComment(payload)
	if err != nil {
		return err
	}

	if err := s.threads.CheckAvailabilityThread(threadId); err != nil {
		return err
	}
	if err := s.comments.CheckCommentAvailability(commentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(commentId, owner); err != nil {
		return err
	}

	return s.comments.DeleteComment(commentId)
}
