package mocks

import "fmt"

// MockTokenGenerator implements auth.TokenGenerator with predictable tokens.
type MockTokenGenerator struct {
	Err   error
	count int
}

// Generate returns "token-1", "token-2", ... or Err when set.
func (m *MockTokenGenerator) Generate() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.count++
	return fmt.Sprintf("token-%d", m.count), nil
}
