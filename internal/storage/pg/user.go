package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/google/uuid"
)

func (s *Storage) AddUser(user domain.RegisterUser, passwordHash string) (domain.RegisteredUser, error) {
	id := "user-" + uuid.NewString()

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username, passwordHash, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) VerifyAvailableUsername(username string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err == nil {
		return internal_errors.RegisterUserUsernameTaken
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("failed to verify username availability: %w", err)
}

func (s *Storage) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname FROM users WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.UserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
