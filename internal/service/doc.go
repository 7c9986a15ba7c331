// Package service contains the application use cases: registering and
// authenticating users, managing each user's contacts and the addresses
// attached to them.
//
// Services validate their input before touching storage, enforce ownership
// through the contact lookup shared by the contact and address services, and
// report failures as sentinel errors that the API layer maps to HTTP status
// codes:
//
//   - *domain.ValidationError (wraps domain.ErrValidation): malformed input
//   - ErrUnauthenticated: missing or unknown session token
//   - ErrInvalidCredentials: failed login
//   - ErrContactNotFound, ErrAddressNotFound: absent or not owned by the caller
//   - ErrUsernameExists: duplicate registration
//
// Anything else is an internal failure, wrapped with context using %w.
package service
