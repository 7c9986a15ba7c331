package service

import (
	"errors"

	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// Service errors, checked by callers with errors.Is.
var (
	// ErrUnauthenticated indicates the request carried no recognised session token.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrUnauthenticated = auth.ErrUnauthenticated

	// ErrInvalidCredentials is returned by Login for both an unknown username
	// and a wrong password.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("username or password is wrong")

	// ErrUsernameExists indicates a registration for a username already taken.
	// API layer should map this to HTTP 400 Bad Request.
	ErrUsernameExists = errors.New("username already exists")

	// ErrContactNotFound indicates the contact does not exist or belongs to another user.
	// API layer should map this to HTTP 404 Not Found.
	ErrContactNotFound = errors.New("contact is not found")

	// ErrAddressNotFound indicates the address does not exist under the contact.
	// API layer should map this to HTTP 404 Not Found.
	ErrAddressNotFound = errors.New("address is not found")
)
