package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn           func(ctx context.Context, user *domain.User) error
	ExistsByUsernameFn func(ctx context.Context, username string) (bool, error)
	GetByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn       func(ctx context.Context, token string) (*domain.User, error)
	UpdateFn           func(ctx context.Context, user *domain.User) error
	SetTokenFn         func(ctx context.Context, username string, token *string) error

	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]*domain.User)}
	for _, u := range users {
		m.Users[u.Username] = cloneUser(u)
	}
	return m
}

var _ store.UserStore = (*MockUserStore)(nil)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.Token != nil {
		t := *u.Token
		c.Token = &t
	}
	return &c
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	m.Users[user.Username] = cloneUser(user)
	return nil
}

// ExistsByUsername implements the UserStore interface
func (m *MockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFn != nil {
		return m.ExistsByUsernameFn(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.Users[username]
	return exists, nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// GetByToken implements the UserStore interface
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.Token != nil && *user.Token == token {
			return cloneUser(user), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Users[user.Username]
	if !exists {
		return store.ErrUserNotFound
	}
	existing.Name = user.Name
	existing.Password = user.Password
	return nil
}

// SetToken implements the UserStore interface
func (m *MockUserStore) SetToken(ctx context.Context, username string, token *string) error {
	if m.SetTokenFn != nil {
		return m.SetTokenFn(ctx, username, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Users[username]
	if !exists {
		return store.ErrUserNotFound
	}
	if token == nil {
		existing.Token = nil
	} else {
		t := *token
		existing.Token = &t
	}
	return nil
}

// Get returns a copy of the stored user, or nil.
func (m *MockUserStore) Get(username string) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.Users[username]; ok {
		return cloneUser(u)
	}
	return nil
}
