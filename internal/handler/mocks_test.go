package handler

import (
	"context"

	"github.com/forum-dev/forum-api/internal/domain"
)

type MockUserService struct {
	MockRegister func(payload domain.RegisterUserPayload) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return domain.RegisteredUser{}, nil // Default behavior
}

type MockAuthService struct {
	MockLogin   func(payload domain.UserLoginPayload) (domain.TokenPair, error)
	MockRefresh func(payload domain.RefreshAuthPayload) (string, error)
	MockLogout  func(payload domain.DeleteAuthPayload) error
}

func (m *MockAuthService) Login(payload domain.UserLoginPayload) (domain.TokenPair, error) {
	if m.MockLogin != nil {
		return m.MockLogin(payload)
	}
	return domain.TokenPair{}, nil // Default behavior
}

func (m *MockAuthService) Refresh(payload domain.RefreshAuthPayload) (string, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(payload)
	}
	return "", nil // Default behavior
}

func (m *MockAuthService) Logout(payload domain.DeleteAuthPayload) error {
	if m.MockLogout != nil {
		return m.MockLogout(payload)
	}
	return nil // Default behavior
}

type MockThreadService struct {
	MockCreate func(payload domain.ThreadPayload, owner string) (domain.AddedThread, error)
	MockDetail func(payload domain.ThreadDetailPayload) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload domain.ThreadPayload, owner string) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return domain.AddedThread{}, nil // Default behavior
}

func (m *MockThreadService) Detail(payload domain.ThreadDetailPayload) (domain.ThreadDetail, error) {
	if m.MockDetail != nil {
		return m.MockDetail(payload)
	}
	return domain.ThreadDetail{}, nil // Default behavior
}

type MockCommentService struct {
	MockAdd    func(payload domain.CommentPayload) (domain.AddedComment, error)
	MockDelete func(payload domain.DeleteCommentPayload, owner string) error
}

func (m *MockCommentService) Add(payload domain.CommentPayload) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(payload)
	}
	return domain.AddedComment{}, nil // Default behavior
}

func (m *MockCommentService) Delete(payload domain.DeleteCommentPayload, owner string) error {
	if m.MockDelete != nil {
		return m.MockDelete(payload, owner)
	}
	return nil // Default behavior
}

type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }
