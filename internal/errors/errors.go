package errors

import (
	"errors"
	"net/http"
)

// Kind is the user-facing category of a domain error. The boundary maps it
// to a status code; nothing else about the error leaks to clients.
type Kind int

const (
	Invariant Kind = iota + 1 // client-correctable input problem
	NotFound                  // referenced resource absent
	Authorization             // caller lacks rights on the resource
)

// DomainError is a member of a closed error set. Code is a stable
// machine-readable identifier, Message is the user-facing text.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) StatusCode() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case Authorization:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// The full error directory. Constructed once, never mutated.
var (
	// Users
	RegisterUserMissingProperty   = &DomainError{Invariant, "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY", "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"}
	RegisterUserTypeMismatch      = &DomainError{Invariant, "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION", "tidak dapat membuat user baru karena tipe data tidak sesuai"}
	RegisterUserUsernameTooLong   = &DomainError{Invariant, "REGISTER_USER.USERNAME_LIMIT_CHAR", "tidak dapat membuat user baru karena karakter username melebihi batas limit"}
	RegisterUserUsernameBadChars  = &DomainError{Invariant, "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER", "tidak dapat membuat user baru karena username mengandung karakter terlarang"}
	RegisterUserUsernameTaken     = &DomainError{Invariant, "REGISTER_USER.USERNAME_UNAVAILABLE", "username tidak tersedia"}
	UserLoginMissingProperty      = &DomainError{Invariant, "USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY", "harus mengirimkan username dan password"}
	UserLoginTypeMismatch         = &DomainError{Invariant, "USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION", "username dan password harus string"}
	UserLoginUsernameNotFound     = &DomainError{Invariant, "USER_LOGIN.USERNAME_NOT_FOUND", "username tidak ditemukan"}
	UserNotFound                  = &DomainError{NotFound, "USER_NOT_FOUND", "user tidak ditemukan"}
	UserLoginWrongPassword        = &DomainError{Invariant, "USER_LOGIN.WRONG_PASSWORD", "kredensial yang Anda masukkan salah"}

	// Authentications
	RefreshAuthMissingToken  = &DomainError{Invariant, "REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN", "harus mengirimkan token refresh"}
	RefreshAuthTypeMismatch  = &DomainError{Invariant, "REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION", "refresh token harus string"}
	DeleteAuthMissingToken   = &DomainError{Invariant, "DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN", "harus mengirimkan token refresh"}
	DeleteAuthTypeMismatch   = &DomainError{Invariant, "DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION", "refresh token harus string"}
	RefreshTokenNotFound     = &DomainError{Invariant, "REFRESH_TOKEN_NOT_FOUND", "refresh token tidak ditemukan di database"}
	RefreshTokenInvalid      = &DomainError{Invariant, "REFRESH_TOKEN_INVALID", "refresh token tidak valid"}

	// Threads
	NewThreadMissingProperty    = &DomainError{Invariant, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", "harus mengirimkan title dan body"}
	NewThreadTypeMismatch       = &DomainError{Invariant, "NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION", "title dan body harus string"}
	AddedThreadMissingProperty  = &DomainError{Invariant, "NEW_THREAD_ADDED.NOT_CONTAIN_NEEDED_PROPERTY", "thread yang ditambahkan tidak lengkap"}
	AddedThreadTypeMismatch     = &DomainError{Invariant, "NEW_THREAD_ADDED.NOT_MEET_DATA_TYPE_SPECIFICATION", "tipe data thread yang ditambahkan tidak sesuai"}
	ThreadNotFound              = &DomainError{NotFound, "THREAD_NOT_FOUND", "thread tidak ditemukan"}
	DetailThreadMissingThreadId = &DomainError{Invariant, "GET_DETAIL_THREAD_USE_CASE.NOT_CONTAIN_THREAD_ID", "harus mengirimkan thread id"}
	DetailThreadTypeMismatch    = &DomainError{Invariant, "GET_DETAIL_THREAD_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION", "thread id harus string"}

	// Comments
	NewCommentMissingProperty   = &DomainError{Invariant, "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY", "harus mengirimkan content"}
	NewCommentTypeMismatch      = &DomainError{Invariant, "NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION", "content harus string"}
	AddedCommentMissingProperty = &DomainError{Invariant, "NEW_COMMENT_ADDED.NOT_CONTAIN_NEEDED_PROPERTY", "komentar yang ditambahkan tidak lengkap"}
	AddedCommentTypeMismatch    = &DomainError{Invariant, "NEW_COMMENT_ADDED.NOT_MEET_DATA_TYPE_SPECIFICATION", "tipe data komentar yang ditambahkan tidak sesuai"}
	CommentNotFound             = &DomainError{NotFound, "COMMENT_NOT_FOUND", "komentar tidak ditemukan"}
	CommentNotOwner             = &DomainError{Authorization, "DELETE_COMMENT.NOT_OWNER", "Anda tidak berhak menghapus komentar ini"}
	DeleteCommentMissingIds     = &DomainError{Invariant, "DELETE_COMMENT_USE_CASE.NOT_CONTAIN_COMMENT_ID_OR_THREAD_ID", "harus mengirimkan comment id dan thread id"}
	DeleteCommentTypeMismatch   = &DomainError{Invariant, "DELETE_COMMENT_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION", "comment id dan thread id harus string"}
)

func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == NotFound
}

func IsInvariant(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == Invariant
}

func IsAuthorization(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == Authorization
}
