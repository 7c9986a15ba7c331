// Package mocks provides centralized mock implementations for testing.
//
// The store mocks keep their data in memory so service and handler tests can
// exercise real flows without a database. Every method can be overridden
// through its Fn field, and WithTx returns the receiver so transactional code
// paths run against the same data.
//
// Usage:
//
//	import "github.com/phrazzld/contacts-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    users := mocks.NewMockUserStore()
//	    users.GetByTokenFn = func(ctx context.Context, token string) (*domain.User, error) {
//	        return nil, store.ErrUserNotFound
//	    }
//	    // Use the mock in your test...
//	}
package mocks
