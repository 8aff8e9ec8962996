package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/google/uuid"
)

func (s *Storage) AddComment(comment domain.NewComment) (domain.AddedComment, error) {
	id := "comment-" + uuid.NewString()
	date := time.Now().UTC()

	var row struct{ id, content, owner string }
	err := s.db.QueryRow(`
        INSERT INTO comments (id, thread_id, owner, content, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, comment.ThreadId, comment.Owner, comment.Content, date).Scan(&row.id, &row.content, &row.owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.ParseAddedComment(domain.AddedCommentPayload{Id: row.id, Content: row.content, Owner: row.owner})
}

func (s *Storage) CheckCommentAvailability(commentId string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1", commentId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.CommentNotFound
		}
		return fmt.Errorf("failed to check comment availability: %w", err)
	}
	return nil
}

// VerifyCommentOwner distinguishes a missing comment from a foreign one so
// the caller gets NotFound vs Authorization, never an ambiguous failure.
func (s *Storage) VerifyCommentOwner(commentId, owner string) error {
	var storedOwner string
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", commentId).Scan(&storedOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.CommentNotFound
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if storedOwner != owner {
		return internal_errors.CommentNotOwner
	}
	return nil
}

// DeleteComment marks the row deleted. The row itself is never removed, and
// the call guards against a missing row on its own so it stays safe when
// invoked standalone.
func (s *Storage) DeleteComment(commentId string) error {
	result, err := s.db.Exec("UPDATE comments SET is_delete = TRUE WHERE id = $1", commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.CommentNotFound
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId string) ([]domain.CommentRow, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, c.date, c.content, c.is_delete
        FROM comments c
        JOIN users u ON c.owner = u.id
        WHERE c.thread_id = $1
        ORDER BY c.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
