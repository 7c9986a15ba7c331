package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	CreateFn            func(ctx context.Context, address *domain.Address) error
	GetByContactAndIDFn func(ctx context.Context, contactID, id int64) (*domain.Address, error)
	UpdateFn            func(ctx context.Context, address *domain.Address) error
	DeleteFn            func(ctx context.Context, contactID, id int64) error
	ListByContactFn     func(ctx context.Context, contactID int64) ([]*domain.Address, error)
	DeleteByContactFn   func(ctx context.Context, contactID int64) (int64, error)

	mu        sync.Mutex
	Addresses map[int64]*domain.Address
	nextID    int64
}

// NewMockAddressStore creates a new mock store with initialized defaults
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{Addresses: make(map[int64]*domain.Address)}
}

var _ store.AddressStore = (*MockAddressStore)(nil)

func cloneAddress(a *domain.Address) *domain.Address {
	cp := *a
	return &cp
}

// WithTx implements the AddressStore interface
func (m *MockAddressStore) WithTx(_ *sql.Tx) store.AddressStore {
	return m
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	address.ID = m.nextID
	m.Addresses[address.ID] = cloneAddress(address)
	return nil
}

// GetByContactAndID implements the AddressStore interface
func (m *MockAddressStore) GetByContactAndID(
	ctx context.Context,
	contactID, id int64,
) (*domain.Address, error) {
	if m.GetByContactAndIDFn != nil {
		return m.GetByContactAndIDFn(ctx, contactID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}
	return cloneAddress(a), nil
}

// Update implements the AddressStore interface
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Addresses[address.ID]
	if !ok || a.ContactID != address.ContactID {
		return store.ErrAddressNotFound
	}
	m.Addresses[address.ID] = cloneAddress(address)
	return nil
}

// Delete implements the AddressStore interface
func (m *MockAddressStore) Delete(ctx context.Context, contactID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, contactID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Addresses[id]
	if !ok || a.ContactID != contactID {
		return store.ErrAddressNotFound
	}
	delete(m.Addresses, id)
	return nil
}

// ListByContact implements the AddressStore interface
func (m *MockAddressStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	if m.ListByContactFn != nil {
		return m.ListByContactFn(ctx, contactID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*domain.Address{}
	for _, a := range m.Addresses {
		if a.ContactID == contactID {
			out = append(out, cloneAddress(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteByContact implements the AddressStore interface
func (m *MockAddressStore) DeleteByContact(ctx context.Context, contactID int64) (int64, error) {
	if m.DeleteByContactFn != nil {
		return m.DeleteByContactFn(ctx, contactID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, a := range m.Addresses {
		if a.ContactID == contactID {
			delete(m.Addresses, id)
			n++
		}
	}
	return n, nil
}
