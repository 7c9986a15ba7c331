package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Lookups are always scoped by the parent contact id.
type AddressStore interface {
	// Create inserts address and assigns address.ID.
	// Returns ErrInvalidEntity if address.ContactID does not exist.
	Create(ctx context.Context, address *domain.Address) error

	// GetByContactAndID returns the address with id under contactID.
	// Returns ErrAddressNotFound otherwise.
	GetByContactAndID(ctx context.Context, contactID, id int64) (*domain.Address, error)

	// Update replaces the mutable fields of the address identified by
	// address.ContactID and address.ID.
	// Returns ErrAddressNotFound if no such address exists.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes the address with id under contactID.
	// Returns ErrAddressNotFound if no such address exists.
	Delete(ctx context.Context, contactID, id int64) error

	// ListByContact returns every address of contactID in insertion order.
	ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error)

	// DeleteByContact removes every address of contactID and returns how
	// many rows were removed.
	DeleteByContact(ctx context.Context, contactID int64) (int64, error)

	// WithTx returns an AddressStore bound to tx.
	WithTx(tx *sql.Tx) AddressStore
}
