package domain

import (
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

const usernameMaxLen = 50

// User is a stored account. Password holds the bcrypt hash, never plaintext.
type User struct {
	Id       string
	Username string
	Fullname string
	Password string
}

// RegisterUserPayload carries raw registration input.
type RegisterUserPayload struct {
	Username any
	Password any
	Fullname any
}

// RegisterUser is a validated registration input.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func ParseRegisterUser(p RegisterUserPayload) (RegisterUser, error) {
	if !present(p.Username) || !present(p.Password) || !present(p.Fullname) {
		return RegisterUser{}, internal_errors.RegisterUserMissingProperty
	}
	username, userOk := asString(p.Username)
	password, passOk := asString(p.Password)
	fullname, fullOk := asString(p.Fullname)
	if !userOk || !passOk || !fullOk {
		return RegisterUser{}, internal_errors.RegisterUserTypeMismatch
	}
	if len(username) > usernameMaxLen {
		return RegisterUser{}, internal_errors.RegisterUserUsernameTooLong
	}
	for _, r := range username {
		if !isWordChar(r) {
			return RegisterUser{}, internal_errors.RegisterUserUsernameBadChars
		}
	}
	return RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// RegisteredUser is the output projection of registration.
type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserLoginPayload carries raw login input.
type UserLoginPayload struct {
	Username any
	Password any
}

// UserLogin is a validated login input.
type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p UserLoginPayload) (UserLogin, error) {
	if !present(p.Username) || !present(p.Password) {
		return UserLogin{}, internal_errors.UserLoginMissingProperty
	}
	username, userOk := asString(p.Username)
	password, passOk := asString(p.Password)
	if !userOk || !passOk {
		return UserLogin{}, internal_errors.UserLoginTypeMismatch
	}
	return UserLogin{Username: username, Password: password}, nil
}

// TokenPair is the output projection of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUser identifies the authenticated caller, as decoded from the access
// token by the auth middleware.
type AuthUser struct {
	Id       string
	Username string
}
