package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type fixture struct {
	users     *mocks.MockUserStore
	contacts  *mocks.MockContactStore
	addresses *mocks.MockAddressStore
	hasher    *mocks.MockPasswordHasher
	tokens    *mocks.MockTokenGenerator
	sqlMock   sqlmock.Sqlmock

	userSvc    UserService
	contactSvc ContactService
	addressSvc AddressService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		_ = db.Close()
	})

	f := &fixture{
		users:     mocks.NewMockUserStore(),
		contacts:  mocks.NewMockContactStore(),
		addresses: mocks.NewMockAddressStore(),
		hasher:    &mocks.MockPasswordHasher{},
		tokens:    &mocks.MockTokenGenerator{},
		sqlMock:   sqlMock,
	}
	v := NewValidator()
	f.userSvc = NewUserService(f.users, f.hasher, f.tokens, v, nil)
	f.contactSvc = NewContactService(db, f.contacts, f.addresses, v, nil)
	f.addressSvc = NewAddressService(f.contactSvc, f.addresses, v, nil)
	return f
}

// seedContact stores a contact for username and returns it.
func (f *fixture) seedContact(t *testing.T, username, firstName string) *domain.Contact {
	t.Helper()
	c := &domain.Contact{Username: username, FirstName: firstName}
	require.NoError(t, f.contacts.Create(context.Background(), c))
	return c
}

// seedAddress stores an address under contactID and returns it.
func (f *fixture) seedAddress(t *testing.T, contactID int64, country string) *domain.Address {
	t.Helper()
	a := &domain.Address{ContactID: contactID, Country: country}
	require.NoError(t, f.addresses.Create(context.Background(), a))
	return a
}

// assertValidation asserts err is a validation error mentioning each fragment.
func assertValidation(t *testing.T, err error, fragments ...string) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	joined := verr.Error()
	for _, frag := range fragments {
		assert.Contains(t, joined, frag)
	}
}
