package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
)

// --- Mocks ---
//
// Func-field mocks: tests override only the calls they care about, defaults
// succeed. Mocks that participate in ordered workflows append to a shared
// call log so tests can assert exact call order and arguments.

type MockThreadRepository struct {
	addThreadFunc               func(thread domain.NewThread, owner string) (domain.AddedThread, error)
	checkAvailabilityThreadFunc func(threadId string) error
	getThreadByIdFunc           func(threadId string) (domain.ThreadDetail, error)

	log *[]string
}

func (m *MockThreadRepository) record(call string) {
	if m.log != nil {
		*m.log = append(*m.log, call)
	}
}

func (m *MockThreadRepository) AddThread(thread domain.NewThread, owner string) (domain.AddedThread, error) {
	m.record("AddThread(" + thread.Title + "," + owner + ")")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread, owner)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadRepository) CheckAvailabilityThread(threadId string) error {
	m.record("CheckAvailabilityThread(" + threadId + ")")
	if m.checkAvailabilityThreadFunc != nil {
		return m.checkAvailabilityThreadFunc(threadId)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadById(threadId string) (domain.ThreadDetail, error) {
	m.record("GetThreadById(" + threadId + ")")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(threadId)
	}
	return domain.ThreadDetail{Id: threadId}, nil
}

type MockCommentRepository struct {
	addCommentFunc               func(comment domain.NewComment) (domain.AddedComment, error)
	checkCommentAvailabilityFunc func(commentId string) error
	verifyCommentOwnerFunc       func(commentId, owner string) error
	deleteCommentFunc            func(commentId string) error
	getCommentsByThreadIdFunc    func(threadId string) ([]domain.CommentRow, error)

	log *[]string
}

func (m *MockCommentRepository) record(call string) {
	if m.log != nil {
		*m.log = append(*m.log, call)
	}
}

func (m *MockCommentRepository) AddComment(comment domain.NewComment) (domain.AddedComment, error) {
	m.record("AddComment(" + comment.Content + "," + comment.ThreadId + "," + comment.Owner + ")")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) CheckCommentAvailability(commentId string) error {
	m.record("CheckCommentAvailability(" + commentId + ")")
	if m.checkCommentAvailabilityFunc != nil {
		return m.checkCommentAvailabilityFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(commentId, owner string) error {
	m.record("VerifyCommentOwner(" + commentId + "," + owner + ")")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentRepository) DeleteComment(commentId string) error {
	m.record("DeleteComment(" + commentId + ")")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(threadId string) ([]domain.CommentRow, error) {
	m.record("GetCommentsByThreadId(" + threadId + ")")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

type MockUserRepository struct {
	addUserFunc                 func(user domain.RegisterUser, passwordHash string) (domain.RegisteredUser, error)
	verifyAvailableUsernameFunc func(username string) error
	getUserByUsernameFunc       func(username string) (domain.User, error)
}

func (m *MockUserRepository) AddUser(user domain.RegisterUser, passwordHash string) (domain.RegisteredUser, error) {
	if m.addUserFunc != nil {
		return m.addUserFunc(user, passwordHash)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserRepository) VerifyAvailableUsername(username string) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) GetUserByUsername(username string) (domain.User, error) {
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

type MockAuthenticationRepository struct {
	addTokenFunc               func(token string) error
	checkAvailabilityTokenFunc func(token string) error
	deleteTokenFunc            func(token string) error

	addedTokens   []string
	deletedTokens []string
}

func (m *MockAuthenticationRepository) AddToken(token string) error {
	m.addedTokens = append(m.addedTokens, token)
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(token string) error {
	if m.checkAvailabilityTokenFunc != nil {
		return m.checkAvailabilityTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) DeleteToken(token string) error {
	m.deletedTokens = append(m.deletedTokens, token)
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

type MockJwt struct {
	newAccessTokenFunc     func(user domain.AuthUser) (string, error)
	newRefreshTokenFunc    func(user domain.AuthUser) (string, error)
	verifyRefreshTokenFunc func(token string) (domain.AuthUser, error)
}

func (m *MockJwt) NewAccessToken(user domain.AuthUser) (string, error) {
	if m.newAccessTokenFunc != nil {
		return m.newAccessTokenFunc(user)
	}
	return "access-token", nil
}

func (m *MockJwt) NewRefreshToken(user domain.AuthUser) (string, error) {
	if m.newRefreshTokenFunc != nil {
		return m.newRefreshTokenFunc(user)
	}
	return "refresh-token", nil
}

func (m *MockJwt) VerifyRefreshToken(token string) (domain.AuthUser, error) {
	if m.verifyRefreshTokenFunc != nil {
		return m.verifyRefreshTokenFunc(token)
	}
	return domain.AuthUser{Id: "user-123", Username: "dicoding"}, nil
}
