// Package memory holds an in-process implementation of the repository
// contracts. It gives service-level tests a real repository and makes the
// stack runnable without a database.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/google/uuid"
)

type threadRecord struct {
	id    string
	title string
	body  string
	owner string
	date  time.Time
}

type commentRecord struct {
	id       string
	threadId string
	owner    string
	content  string
	date     time.Time
	isDelete bool
}

type Storage struct {
	mu       sync.RWMutex
	threads  map[string]*threadRecord
	comments map[string]*commentRecord
	users    map[string]*domain.User // keyed by username
	tokens   map[string]struct{}

	// now is swappable so tests can control comment ordering.
	now func() time.Time
}

func New() *Storage {
	return &Storage{
		threads:  make(map[string]*threadRecord),
		comments: make(map[string]*commentRecord),
		users:    make(map[string]*domain.User),
		tokens:   make(map[string]struct{}),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// --- ThreadRepository ---

func (s *Storage) AddThread(thread domain.NewThread, owner string) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &threadRecord{
		id:    "thread-" + uuid.NewString(),
		title: thread.Title,
		body:  thread.Body,
		owner: owner,
		date:  s.now(),
	}
	s.threads[rec.id] = rec

	return domain.ParseAddedThread(domain.AddedThreadPayload{Id: rec.id, Title: rec.title, Owner: rec.owner})
}

func (s *Storage) CheckAvailabilityThread(threadId string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.threads[threadId]; !ok {
		return internal_errors.ThreadNotFound
	}
	return nil
}

func (s *Storage) GetThreadById(threadId string) (domain.ThreadDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.threads[threadId]
	if !ok {
		return domain.ThreadDetail{}, internal_errors.ThreadNotFound
	}

	username := rec.owner
	for _, u := range s.users {
		if u.Id == rec.owner {
			username = u.Username
			break
		}
	}

	return domain.ThreadDetail{
		Id:       rec.id,
		Title:    rec.title,
		Body:     rec.body,
		Date:     rec.date,
		Username: username,
	}, nil
}

// --- CommentRepository ---

func (s *Storage) AddComment(comment domain.NewComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &commentRecord{
		id:       "comment-" + uuid.NewString(),
		threadId: comment.ThreadId,
		owner:    comment.Owner,
		content:  comment.Content,
		date:     s.now(),
	}
	s.comments[rec.id] = rec

	return domain.ParseAddedComment(domain.AddedCommentPayload{Id: rec.id, Content: rec.content, Owner: rec.owner})
}

func (s *Storage) CheckCommentAvailability(commentId string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.comments[commentId]; !ok {
		return internal_errors.CommentNotFound
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(commentId, owner string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.comments[commentId]
	if !ok {
		return internal_errors.CommentNotFound
	}
	if rec.owner != owner {
		return internal_errors.CommentNotOwner
	}
	return nil
}

func (s *Storage) DeleteComment(commentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.comments[commentId]
	if !ok {
		return internal_errors.CommentNotFound
	}
	rec.isDelete = true
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId string) ([]domain.CommentRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []domain.CommentRow
	for _, rec := range s.comments {
		if rec.threadId != threadId {
			continue
		}
		username := rec.owner
		for _, u := range s.users {
			if u.Id == rec.owner {
				username = u.Username
				break
			}
		}
		rows = append(rows, domain.CommentRow{
			Id:       rec.id,
			Username: username,
			Date:     rec.date,
			Content:  rec.content,
			IsDelete: rec.isDelete,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// --- UserRepository ---

func (s *Storage) AddUser(user domain.RegisterUser, passwordHash string) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return domain.RegisteredUser{}, internal_errors.RegisterUserUsernameTaken
	}
	rec := &domain.User{
		Id:       "user-" + uuid.NewString(),
		Username: user.Username,
		Fullname: user.Fullname,
		Password: passwordHash,
	}
	s.users[user.Username] = rec

	return domain.RegisteredUser{Id: rec.Id, Username: rec.Username, Fullname: rec.Fullname}, nil
}

func (s *Storage) VerifyAvailableUsername(username string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[username]; ok {
		return internal_errors.RegisterUserUsernameTaken
	}
	return nil
}

func (s *Storage) GetUserByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[username]
	if !ok {
		return domain.User{}, internal_errors.UserNotFound
	}
	return *rec, nil
}

// --- AuthenticationRepository ---

func (s *Storage) AddToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *Storage) CheckAvailabilityToken(token string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.tokens[token]; !ok {
		return internal_errors.RefreshTokenNotFound
	}
	return nil
}

func (s *Storage) DeleteToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; !ok {
		return internal_errors.RefreshTokenNotFound
	}
	delete(s.tokens, token)
	return nil
}
