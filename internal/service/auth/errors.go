package auth

import (
	"errors"
	"fmt"
)

// Common authentication errors
var (
	// ErrUnauthenticated is the base error for any request that does not carry
	// a recognised session token.
	ErrUnauthenticated = errors.New("unauthorized")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = fmt.Errorf("%w: authentication token is missing", ErrUnauthenticated)

	// ErrInvalidToken indicates no user currently holds the presented token.
	ErrInvalidToken = fmt.Errorf("%w: invalid authentication token", ErrUnauthenticated)
)
