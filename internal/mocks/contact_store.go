package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing
type MockContactStore struct {
	CreateFn             func(ctx context.Context, contact *domain.Contact) error
	GetByIDAndUsernameFn func(ctx context.Context, id int64, username string) (*domain.Contact, error)
	UpdateFn             func(ctx context.Context, contact *domain.Contact) error
	DeleteFn             func(ctx context.Context, id int64, username string) error
	SearchFn             func(ctx context.Context, filter store.ContactFilter, offset int64, limit int) ([]*domain.Contact, error)
	CountFn              func(ctx context.Context, filter store.ContactFilter) (int64, error)

	mu       sync.Mutex
	Contacts map[int64]*domain.Contact
	nextID   int64
}

// NewMockContactStore creates a new mock store with initialized defaults
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{Contacts: make(map[int64]*domain.Contact)}
}

var _ store.ContactStore = (*MockContactStore)(nil)

func cloneContact(c *domain.Contact) *domain.Contact {
	cp := *c
	return &cp
}

// WithTx implements the ContactStore interface
func (m *MockContactStore) WithTx(_ *sql.Tx) store.ContactStore {
	return m
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	contact.ID = m.nextID
	m.Contacts[contact.ID] = cloneContact(contact)
	return nil
}

// GetByIDAndUsername implements the ContactStore interface
func (m *MockContactStore) GetByIDAndUsername(
	ctx context.Context,
	id int64,
	username string,
) (*domain.Contact, error) {
	if m.GetByIDAndUsernameFn != nil {
		return m.GetByIDAndUsernameFn(ctx, id, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.Contacts[id]
	if !ok || c.Username != username {
		return nil, store.ErrContactNotFound
	}
	return cloneContact(c), nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.Contacts[contact.ID]
	if !ok || c.Username != contact.Username {
		return store.ErrContactNotFound
	}
	m.Contacts[contact.ID] = cloneContact(contact)
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, id int64, username string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.Contacts[id]
	if !ok || c.Username != username {
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	return nil
}

// Search implements the ContactStore interface
func (m *MockContactStore) Search(
	ctx context.Context,
	filter store.ContactFilter,
	offset int64,
	limit int,
) ([]*domain.Contact, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter, offset, limit)
	}
	matches := m.matching(filter)

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("invalid paging: offset %d, limit %d", offset, limit)
	}

	result := []*domain.Contact{}
	if offset >= int64(len(matches)) {
		return result, nil
	}
	for _, c := range matches[offset:] {
		if len(result) >= limit {
			break
		}
		result = append(result, c)
	}
	return result, nil
}

// Count implements the ContactStore interface
func (m *MockContactStore) Count(ctx context.Context, filter store.ContactFilter) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return int64(len(m.matching(filter))), nil
}

func (m *MockContactStore) matching(filter store.ContactFilter) []*domain.Contact {
	m.mu.Lock()
	defer m.mu.Unlock()

	contains := func(field *string, sub string) bool {
		return field != nil && strings.Contains(*field, sub)
	}

	var out []*domain.Contact
	for _, c := range m.Contacts {
		if c.Username != filter.Username {
			continue
		}
		if filter.Name != nil &&
			!strings.Contains(c.FirstName, *filter.Name) && !contains(c.LastName, *filter.Name) {
			continue
		}
		if filter.Email != nil && !contains(c.Email, *filter.Email) {
			continue
		}
		if filter.Phone != nil && !contains(c.Phone, *filter.Phone) {
			continue
		}
		out = append(out, cloneContact(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
