package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
)

type ThreadService interface {
	Create(payload domain.ThreadPayload, owner string) (domain.AddedThread, error)
	Detail(payload domain.ThreadDetailPayload) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadRepository
	comments CommentRepository
}

// ThreadRepository is the store capability set the thread workflows depend on.
type ThreadRepository interface {
	AddThread(thread domain.NewThread, owner string) (domain.AddedThread, error)
	CheckAvailabilityThread(threadId string) error
	GetThreadById(threadId string) (domain.ThreadDetail, error)
}

func NewThread(threads ThreadRepository, comments CommentRepository) ThreadService {
	return &Thread{threads: threads, comments: comments}
}

func (s *Thread) Create(payload domain.ThreadPayload, owner string) (domain.AddedThread, error) {
	thread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threads.AddThread(thread, owner)
}

// Content shown in place of a soft-deleted comment. The original text must
// never leave this layer once the comment is marked deleted.
const deletedCommentContent = "**komentar telah dihapus**"

func (s *Thread) Detail(payload domain.ThreadDetailPayload) (domain.ThreadDetail, error) {
	threadId, err := domain.ParseThreadDetailId(payload)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := s.threads.GetThreadById(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	rows, err := s.comments.GetCommentsByThreadId(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	// Repository returns rows in ascending date order; only the content
	// substitution happens here.
	comments := make([]domain.CommentDetail, 0, len(rows))
	for _, row := range rows {
		content := row.Content
		if row.IsDelete {
			content = deletedCommentContent
		}
		comments = append(comments, domain.CommentDetail{
			Id:       row.Id,
			Username: row.Username,
			Date:     row.Date,
			Content:  content,
		})
	}
	thread.Comments = comments

	return thread, nil
}
