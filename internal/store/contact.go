package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContactFilter selects contacts of one owner. Nil criteria are ignored;
// the rest are combined with AND. Name matches first or last name.
type ContactFilter struct {
	Username string
	Name     *string
	Email    *string
	Phone    *string
}

// ContactStore defines the interface for contact data persistence.
// Every lookup is scoped by owner so a contact of another user is
// indistinguishable from a missing one.
type ContactStore interface {
	// Create inserts contact and assigns contact.ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByIDAndUsername returns the contact with id owned by username.
	// Returns ErrContactNotFound otherwise.
	GetByIDAndUsername(ctx context.Context, id int64, username string) (*domain.Contact, error)

	// Update replaces the mutable fields of the contact identified by
	// contact.ID and contact.Username.
	// Returns ErrContactNotFound if no such contact exists.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes the contact with id owned by username.
	// Returns ErrContactNotFound if no such contact exists.
	Delete(ctx context.Context, id int64, username string) error

	// Search returns at most limit contacts matching filter, skipping offset
	// rows, ordered by id.
	Search(ctx context.Context, filter ContactFilter, offset int64, limit int) ([]*domain.Contact, error)

	// Count returns the number of contacts matching filter.
	Count(ctx context.Context, filter ContactFilter) (int64, error)

	// WithTx returns a ContactStore bound to tx.
	WithTx(tx *sql.Tx) ContactStore
}
