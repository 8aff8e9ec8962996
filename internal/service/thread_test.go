package service

import (
	"errors"
	"testing"
	"time"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadCreate(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		threads := &MockThreadRepository{}
		comments := &MockCommentRepository{}
		expected := domain.AddedThread{Id: "thread-123", Title: "thread title", Owner: "user-123"}
		threads.addThreadFunc = func(thread domain.NewThread, owner string) (domain.AddedThread, error) {
			assert.Equal(t, domain.NewThread{Title: "thread title", Body: "thread body"}, thread)
			assert.Equal(t, "user-123", owner)
			return expected, nil
		}
		svc := NewThread(threads, comments)

		added, err := svc.Create(domain.ThreadPayload{Title: "thread title", Body: "thread body"}, "user-123")

		require.NoError(t, err)
		assert.Equal(t, expected, added)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		var calls []string
		threads := &MockThreadRepository{log: &calls}
		svc := NewThread(threads, &MockCommentRepository{log: &calls})

		_, err := svc.Create(domain.ThreadPayload{Title: "thread title"}, "user-123")

		assert.Equal(t, internal_errors.NewThreadMissingProperty, err)
		assert.Empty(t, calls)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		threads := &MockThreadRepository{}
		storageErr := errors.New("db connection lost")
		threads.addThreadFunc = func(domain.NewThread, string) (domain.AddedThread, error) {
			return domain.AddedThread{}, storageErr
		}
		svc := NewThread(threads, &MockCommentRepository{})

		_, err := svc.Create(domain.ThreadPayload{Title: "t", Body: "b"}, "user-123")

		assert.True(t, errors.Is(err, storageErr))
	})
}

func TestThreadDetail(t *testing.T) {
	baseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing thread id", func(t *testing.T) {
		svc := NewThread(&MockThreadRepository{}, &MockCommentRepository{})
		_, err := svc.Detail(domain.ThreadDetailPayload{})
		assert.Equal(t, internal_errors.DetailThreadMissingThreadId, err)
	})

	t.Run("thread not found", func(t *testing.T) {
		var calls []string
		threads := &MockThreadRepository{log: &calls}
		comments := &MockCommentRepository{log: &calls}
		threads.getThreadByIdFunc = func(string) (domain.ThreadDetail, error) {
			return domain.ThreadDetail{}, internal_errors.ThreadNotFound
		}
		svc := NewThread(threads, comments)

		_, err := svc.Detail(domain.ThreadDetailPayload{ThreadId: "thread-404"})

		assert.Equal(t, internal_errors.ThreadNotFound, err)
		assert.Equal(t, []string{"GetThreadById(thread-404)"}, calls)
	})

	t.Run("deleted comments are masked, order preserved", func(t *testing.T) {
		threads := &MockThreadRepository{}
		comments := &MockCommentRepository{}
		threads.getThreadByIdFunc = func(threadId string) (domain.ThreadDetail, error) {
			return domain.ThreadDetail{
				Id:       threadId,
				Title:    "thread title",
				Body:     "thread body",
				Date:     baseDate,
				Username: "dicoding",
			}, nil
		}
		comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRow, error) {
			assert.Equal(t, "thread-123", threadId)
			return []domain.CommentRow{
				{Id: "comment-1", Username: "userB", Date: baseDate, Content: "komentar pertama", IsDelete: true},
				{Id: "comment-2", Username: "userA", Date: baseDate.Add(time.Minute), Content: "komentar kedua", IsDelete: false},
			}, nil
		}
		svc := NewThread(threads, comments)

		detail, err := svc.Detail(domain.ThreadDetailPayload{ThreadId: "thread-123"})

		require.NoError(t, err)
		require.Len(t, detail.Comments, 2)
		assert.Equal(t, domain.CommentDetail{
			Id:       "comment-1",
			Username: "userB",
			Date:     baseDate,
			Content:  "**komentar telah dihapus**",
		}, detail.Comments[0])
		assert.Equal(t, domain.CommentDetail{
			Id:       "comment-2",
			Username: "userA",
			Date:     baseDate.Add(time.Minute),
			Content:  "komentar kedua",
		}, detail.Comments[1])
	})

	t.Run("thread without comments gets an empty slice", func(t *testing.T) {
		svc := NewThread(&MockThreadRepository{}, &MockCommentRepository{})

		detail, err := svc.Detail(domain.ThreadDetailPayload{ThreadId: "thread-123"})

		require.NoError(t, err)
		assert.NotNil(t, detail.Comments)
		assert.Empty(t, detail.Comments)
	})
}
