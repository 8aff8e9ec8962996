package domain

import (
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

// RefreshAuthPayload carries raw input for an access-token refresh.
type RefreshAuthPayload struct {
	RefreshToken any
}

func ParseRefreshAuth(p RefreshAuthPayload) (string, error) {
	if !present(p.RefreshToken) {
		return "", internal_errors.RefreshAuthMissingToken
	}
	token, ok := asString(p.RefreshToken)
	if !ok {
		return "", internal_errors.RefreshAuthTypeMismatch
	}
	return token, nil
}

// DeleteAuthPayload carries raw input for a logout.
type DeleteAuthPayload struct {
	RefreshToken any
}

func ParseDeleteAuth(p DeleteAuthPayload) (string, error) {
	if !present(p.RefreshToken) {
		return "", internal_errors.DeleteAuthMissingToken
	}
	token, ok := asString(p.RefreshToken)
	if !ok {
		return "", internal_errors.DeleteAuthTypeMismatch
	}
	return token, nil
}
