package auth

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// UUIDTokenGenerator issues random UUID v4 strings as session tokens.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a UUIDTokenGenerator.
func NewUUIDTokenGenerator() UUIDTokenGenerator {
	return UUIDTokenGenerator{}
}

// Generate implements TokenGenerator.
func (UUIDTokenGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return id.String(), nil
}
