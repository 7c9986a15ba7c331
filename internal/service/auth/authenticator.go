package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Authenticator resolves a session token to the user holding it.
type Authenticator interface {
	// Authenticate returns the user whose token equals token exactly.
	// Fails with an error wrapping ErrUnauthenticated when none does.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenAuthenticator looks tokens up in the user store on every call.
type TokenAuthenticator struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewTokenAuthenticator creates a TokenAuthenticator backed by users.
func NewTokenAuthenticator(users store.UserStore, logger *slog.Logger) *TokenAuthenticator {
	if users == nil {
		panic("users cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenAuthenticator{
		users:  users,
		logger: logger.With(slog.String("component", "token_authenticator")),
	}
}

var _ Authenticator = (*TokenAuthenticator)(nil)

// Authenticate implements Authenticator.
func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	user, err := a.users.GetByToken(ctx, token)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidToken
		}
		logger.FromContextOrDefault(ctx, a.logger).Error("failed to resolve session token",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}

	return user, nil
}
