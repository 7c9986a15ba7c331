//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/phrazzld/contacts-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIntegrationUser(t *testing.T, tx *sql.Tx, username string) {
	t.Helper()
	users := postgres.NewPostgresUserStore(tx, nil)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		Username: username,
		Password: "$2a$04$hash",
		Name:     username,
	}))
}

func TestIntegration_UserStore(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		seedIntegrationUser(t, tx, "it-alice")

		exists, err := users.ExistsByUsername(ctx, "it-alice")
		require.NoError(t, err)
		assert.True(t, exists)

		token := "it-token-alice"
		require.NoError(t, users.SetToken(ctx, "it-alice", &token))

		got, err := users.GetByToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "it-alice", got.Username)

		require.NoError(t, users.SetToken(ctx, "it-alice", nil))
		_, err = users.GetByToken(ctx, token)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestIntegration_DuplicateUsername(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		seedIntegrationUser(t, tx, "it-dup")
		err := postgres.NewPostgresUserStore(tx, nil).Create(context.Background(), &domain.User{
			Username: "it-dup",
			Password: "x",
			Name:     "x",
		})
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})
}

func TestIntegration_ContactsAndAddresses(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		seedIntegrationUser(t, tx, "it-owner")
		seedIntegrationUser(t, tx, "it-other")

		contacts := postgres.NewPostgresContactStore(tx, nil)
		addresses := postgres.NewPostgresAddressStore(tx, nil)

		email := "john@example.com"
		for _, name := range []string{"John", "Johanna", "Mary"} {
			c := &domain.Contact{Username: "it-owner", FirstName: name}
			if name == "John" {
				c.Email = &email
			}
			require.NoError(t, contacts.Create(ctx, c))
			assert.Positive(t, c.ID)
		}

		name := "Joh"
		filter := store.ContactFilter{Username: "it-owner", Name: &name}
		found, err := contacts.Search(ctx, filter, 0, 10)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "John", found[0].FirstName)

		total, err := contacts.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		others, err := contacts.Search(ctx, store.ContactFilter{Username: "it-other"}, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, others)

		contactID := found[0].ID
		_, err = contacts.GetByIDAndUsername(ctx, contactID, "it-other")
		assert.ErrorIs(t, err, store.ErrContactNotFound)

		address := &domain.Address{ContactID: contactID, Country: "Indonesia"}
		require.NoError(t, addresses.Create(ctx, address))

		list, err := addresses.ListByContact(ctx, contactID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		n, err := addresses.DeleteByContact(ctx, contactID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, contacts.Delete(ctx, contactID, "it-owner"))
		assert.ErrorIs(t, contacts.Delete(ctx, contactID, "it-owner"), store.ErrContactNotFound)
	})
}

func TestIntegration_AddressRequiresContact(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		err := postgres.NewPostgresAddressStore(tx, nil).Create(context.Background(), &domain.Address{
			ContactID: 987654321,
			Country:   "Nowhere",
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
