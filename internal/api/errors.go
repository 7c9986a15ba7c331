package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// registration conflicts are reported as 400, not 409
	case errors.Is(err, service.ErrUsernameExists):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrAddressNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.Messages) == 0 {
			return "Validation error"
		}
		return strings.Join(verr.Messages, "; ")

	case errors.Is(err, service.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Username or password is wrong"

	case errors.Is(err, service.ErrUnauthenticated):
		return "Unauthorized"

	case errors.Is(err, service.ErrContactNotFound):
		return "Contact is not found"

	case errors.Is(err, service.ErrAddressNotFound):
		return "Address is not found"

	default:
		return "An unexpected error occurred"
	}
}
