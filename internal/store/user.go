package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. user.Password must already be hashed.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// ExistsByUsername reports whether a user with username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user whose session token equals token exactly.
	// Returns ErrUserNotFound when no user holds the token.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// Update persists name and password for the user identified by
	// user.Username. The token column is left untouched.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// SetToken replaces the user's session token; nil clears it.
	// Returns ErrUserNotFound if the user does not exist.
	SetToken(ctx context.Context, username string, token *string) error
}
