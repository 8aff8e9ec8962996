package service

import (
	"errors"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(payload domain.UserLoginPayload) (domain.TokenPair, error)
	Refresh(payload domain.RefreshAuthPayload) (string, error)
	Logout(payload domain.DeleteAuthPayload) error
}

type Auth struct {
	users UserRepository
	auths AuthenticationRepository
	jwt   Jwt
}

// AuthenticationRepository persists issued refresh tokens so they can be
// revoked.
type AuthenticationRepository interface {
	AddToken(token string) error
	CheckAvailabilityToken(token string) error
	DeleteToken(token string) error
}

type Jwt interface {
	NewAccessToken(user domain.AuthUser) (string, error)
	NewRefreshToken(user domain.AuthUser) (string, error)
	VerifyRefreshToken(token string) (domain.AuthUser, error)
}

func NewAuth(users UserRepository, auths AuthenticationRepository, jwt Jwt) AuthService {
	return &Auth{users: users, auths: auths, jwt: jwt}
}

func (s *Auth) Login(payload domain.UserLoginPayload) (domain.TokenPair, error) {
	login, err := domain.ParseUserLogin(payload)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.users.GetUserByUsername(login.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.TokenPair{}, internal_errors.UserLoginUsernameNotFound
		}
		return domain.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.TokenPair{}, internal_errors.UserLoginWrongPassword
		}
		return domain.TokenPair{}, err
	}

	authUser := domain.AuthUser{Id: user.Id, Username: user.Username}
	accessToken, err := s.jwt.NewAccessToken(authUser)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.jwt.NewRefreshToken(authUser)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if err := s.auths.AddToken(refreshToken); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Auth) Refresh(payload domain.RefreshAuthPayload) (string, error) {
	token, err := domain.ParseRefreshAuth(payload)
	if err != nil {
		return "", err
	}

	user, err := s.jwt.VerifyRefreshToken(token)
	if err != nil {
		return "", internal_errors.RefreshTokenInvalid
	}

	// Token must still be registered; logout revokes it.
	if err := s.auths.CheckAvailabilityToken(token); err != nil {
		return "", err
	}

	return s.jwt.NewAccessToken(user)
}

func (s *Auth) Logout(payload domain.DeleteAuthPayload) error {
	token, err := domain.ParseDeleteAuth(payload)
	if err != nil {
		return err
	}

	if err := s.auths.CheckAvailabilityToken(token); err != nil {
		return err
	}

	return s.auths.DeleteToken(token)
}
