package mocks

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAuthenticator is a mock of auth.Authenticator for use with testify/mock
type TestifyMockAuthenticator struct {
	mock.Mock
}

// Authenticate is a mock implementation of auth.Authenticator.Authenticate
func (m *TestifyMockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}
