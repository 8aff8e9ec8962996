package pg

import (
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

func (s *Storage) AddToken(token string) error {
	if _, err := s.db.Exec("INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(token string) error {
	var stored string
	err := s.db.QueryRow("SELECT token FROM authentications WHERE token = $1", token).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.RefreshTokenNotFound
		}
		return fmt.Errorf("failed to check refresh token: %w", err)
	}
	return nil
}

func (s *Storage) DeleteToken(token string) error {
	result, err := s.db.Exec("DELETE FROM authentications WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.RefreshTokenNotFound
	}
	return nil
}
