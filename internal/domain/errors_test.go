package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("first_name is required", "email must be a valid email")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t,
		"validation failed: first_name is required; email must be a valid email",
		err.Error())

	wrapped := fmt.Errorf("create contact: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Len(t, ve.Messages, 2)
}

func TestValidationError_NoMessages(t *testing.T) {
	err := NewValidationError()
	assert.Equal(t, "validation failed", err.Error())
}

func TestUser_HasToken(t *testing.T) {
	token := "abc"
	empty := ""

	assert.True(t, (&User{Token: &token}).HasToken())
	assert.False(t, (&User{}).HasToken())
	assert.False(t, (&User{Token: &empty}).HasToken())
}
