// Package auth holds the authentication primitives: bcrypt password hashing,
// opaque session token generation and the token authenticator that resolves
// a presented credential to its user.
package auth
