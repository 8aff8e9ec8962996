package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
	"github.com/forum-dev/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error)
}

type User struct {
	users UserRepository
}

// UserRepository is the store capability set the account workflows depend on.
type UserRepository interface {
	AddUser(user domain.RegisterUser, passwordHash string) (domain.RegisteredUser, error)
	VerifyAvailableUsername(username string) error
	GetUserByUsername(username string) (domain.User, error)
}

func NewUser(users UserRepository) UserService {
	return &User{users: users}
}

func (s *User) Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	user, err := domain.ParseRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := s.users.VerifyAvailableUsername(user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	return s.users.AddUser(user, string(passHash))
}
