package jwt

import (
	"errors"
	"time"

	"github.com/forum-dev/forum-api/internal/domain"
	"github.com/forum-dev/forum-api/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type JwtService interface {
	NewAccessToken(user domain.AuthUser) (string, error)
	NewRefreshToken(user domain.AuthUser) (string, error)
	VerifyAccessToken(token string) (domain.AuthUser, error)
	VerifyRefreshToken(token string) (domain.AuthUser, error)
}

type Jwt struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) JwtService {
	return &Jwt{accessKey, refreshKey, accessTTL, refreshTTL}
}

func (j *Jwt) NewAccessToken(user domain.AuthUser) (string, error) {
	return newToken(user, j.accessKey, j.accessTTL)
}

func (j *Jwt) NewRefreshToken(user domain.AuthUser) (string, error) {
	return newToken(user, j.refreshKey, j.refreshTTL)
}

func (j *Jwt) VerifyAccessToken(token string) (domain.AuthUser, error) {
	return verify(token, j.accessKey)
}

func (j *Jwt) VerifyRefreshToken(token string) (domain.AuthUser, error) {
	return verify(token, j.refreshKey)
}

func newToken(user domain.AuthUser, key string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"uid":      user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return signed, nil
}

func verify(tokenStr, key string) (domain.AuthUser, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return domain.AuthUser{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.AuthUser{}, ErrInvalidToken
	}
	uid, ok := claims["uid"].(string)
	if !ok {
		return domain.AuthUser{}, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.AuthUser{}, ErrInvalidToken
	}

	return domain.AuthUser{Id: uid, Username: username}, nil
}
