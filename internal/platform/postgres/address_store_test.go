package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressCols = []string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}

func newAddressStore(t *testing.T) (*PostgresAddressStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresAddressStore(db, nil), mock
}

func TestPostgresAddressStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("INSERT INTO addresses").
			WithArgs(int64(3), "Main St", nil, nil, "Indonesia", "12345").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

		a := &domain.Address{
			ContactID:  3,
			Street:     strPtr("Main St"),
			Country:    "Indonesia",
			PostalCode: strPtr("12345"),
		}
		require.NoError(t, s.Create(ctx, a))
		assert.Equal(t, int64(9), a.ID)
	})

	t.Run("missing contact", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("INSERT INTO addresses").WillReturnError(newPgErr(foreignKeyViolationCode))

		err := s.Create(ctx, &domain.Address{ContactID: 99, Country: "Indonesia"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresAddressStore_GetByContactAndID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("FROM addresses WHERE id = ").
			WithArgs(int64(9), int64(3)).
			WillReturnRows(sqlmock.NewRows(addressCols).
				AddRow(int64(9), int64(3), "Main St", "Jakarta", nil, "Indonesia", nil))

		a, err := s.GetByContactAndID(ctx, 3, 9)
		require.NoError(t, err)
		assert.Equal(t, "Indonesia", a.Country)
		assert.Equal(t, "Jakarta", *a.City)
		assert.Nil(t, a.Province)
	})

	t.Run("wrong contact", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("FROM addresses WHERE id = ").WillReturnRows(sqlmock.NewRows(addressCols))

		_, err := s.GetByContactAndID(ctx, 4, 9)
		assert.ErrorIs(t, err, store.ErrAddressNotFound)
	})
}

func TestPostgresAddressStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update missing", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectExec("UPDATE addresses").WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(ctx, &domain.Address{ID: 9, ContactID: 3, Country: "Japan"})
		assert.ErrorIs(t, err, store.ErrAddressNotFound)
	})

	t.Run("update", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectExec("UPDATE addresses").
			WithArgs(int64(9), int64(3), nil, nil, nil, "Japan", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Update(ctx, &domain.Address{ID: 9, ContactID: 3, Country: "Japan"}))
	})

	t.Run("delete", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectExec("DELETE FROM addresses WHERE id = ").
			WithArgs(int64(9), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(ctx, 3, 9))
	})

	t.Run("delete by contact", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectExec("DELETE FROM addresses WHERE contact_id = ").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 4))

		n, err := s.DeleteByContact(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}

func TestPostgresAddressStore_ListByContact(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("FROM addresses WHERE contact_id = .* ORDER BY id").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(addressCols).
				AddRow(int64(1), int64(3), nil, nil, nil, "Indonesia", nil).
				AddRow(int64(2), int64(3), nil, nil, nil, "Japan", nil))

		list, err := s.ListByContact(ctx, 3)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Japan", list[1].Country)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		s, mock := newAddressStore(t)
		mock.ExpectQuery("FROM addresses WHERE contact_id").WillReturnRows(sqlmock.NewRows(addressCols))

		list, err := s.ListByContact(ctx, 3)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
