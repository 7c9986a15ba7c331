package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTokenAuthenticator(t *testing.T) {
	users := mocks.NewMockUserStore(
		&domain.User{Username: "alice", Name: "Alice", Password: "h", Token: strPtr("tok-a")},
		&domain.User{Username: "bob", Name: "Bob", Password: "h"},
	)
	a := auth.NewTokenAuthenticator(users, nil)
	ctx := context.Background()

	t.Run("resolves exact token", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "tok-a")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "")
		assert.ErrorIs(t, err, auth.ErrMissingToken)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "tok-")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("store failure is not unauthenticated", func(t *testing.T) {
		failing := mocks.NewMockUserStore()
		failing.GetByTokenFn = func(ctx context.Context, token string) (*domain.User, error) {
			return nil, errors.New("db down")
		}
		_, err := auth.NewTokenAuthenticator(failing, nil).Authenticate(ctx, "tok-a")
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestNewTokenAuthenticatorPanicsOnNilStore(t *testing.T) {
	assert.Panics(t, func() { auth.NewTokenAuthenticator(nil, nil) })
}
