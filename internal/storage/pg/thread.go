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

func (s *Storage) AddThread(thread domain.NewThread, owner string) (domain.AddedThread, error) {
	id := "thread-" + uuid.NewString()
	date := time.Now().UTC()

	var row struct{ id, title, owner string }
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, owner, date).Scan(&row.id, &row.title, &row.owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.ParseAddedThread(domain.AddedThreadPayload{Id: row.id, Title: row.title, Owner: row.owner})
}

func (s *Storage) CheckAvailabilityThread(threadId string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.ThreadNotFound
		}
		return fmt.Errorf("failed to check thread availability: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadById(threadId string) (domain.ThreadDetail, error) {
	var detail domain.ThreadDetail
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, t.date, u.username
        FROM threads t
        JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, threadId).Scan(&detail.Id, &detail.Title, &detail.Body, &detail.Date, &detail.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, internal_errors.ThreadNotFound
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return detail, nil
}
