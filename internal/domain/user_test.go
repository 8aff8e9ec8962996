package domain

import (
	"strings"
	"testing"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegisterUser(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := ParseRegisterUser(RegisterUserPayload{Username: "dicoding", Password: "secret"})
		assert.Equal(t, internal_errors.RegisterUserMissingProperty, err)
	})

	t.Run("non-string fullname", func(t *testing.T) {
		_, err := ParseRegisterUser(RegisterUserPayload{Username: "dicoding", Password: "secret", Fullname: true})
		assert.Equal(t, internal_errors.RegisterUserTypeMismatch, err)
	})

	t.Run("username over 50 characters", func(t *testing.T) {
		_, err := ParseRegisterUser(RegisterUserPayload{
			Username: strings.Repeat("a", 51),
			Password: "secret",
			Fullname: "Dicoding Indonesia",
		})
		assert.Equal(t, internal_errors.RegisterUserUsernameTooLong, err)
	})

	t.Run("username with restricted characters", func(t *testing.T) {
		_, err := ParseRegisterUser(RegisterUserPayload{
			Username: "dico ding",
			Password: "secret",
			Fullname: "Dicoding Indonesia",
		})
		assert.Equal(t, internal_errors.RegisterUserUsernameBadChars, err)
	})

	t.Run("valid payload", func(t *testing.T) {
		u, err := ParseRegisterUser(RegisterUserPayload{
			Username: "dicoding_123",
			Password: "secret",
			Fullname: "Dicoding Indonesia",
		})
		require.NoError(t, err)
		assert.Equal(t, RegisterUser{Username: "dicoding_123", Password: "secret", Fullname: "Dicoding Indonesia"}, u)
	})
}

func TestParseUserLogin(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := ParseUserLogin(UserLoginPayload{Username: "dicoding"})
		assert.Equal(t, internal_errors.UserLoginMissingProperty, err)
	})

	t.Run("non-string password", func(t *testing.T) {
		_, err := ParseUserLogin(UserLoginPayload{Username: "dicoding", Password: float64(42)})
		assert.Equal(t, internal_errors.UserLoginTypeMismatch, err)
	})

	t.Run("valid payload", func(t *testing.T) {
		l, err := ParseUserLogin(UserLoginPayload{Username: "dicoding", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, UserLogin{Username: "dicoding", Password: "secret"}, l)
	})
}
