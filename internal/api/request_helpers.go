package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// Path parameter names used by the router.
const (
	ContactIDParam = "contactId"
	AddressIDParam = "addressId"
)

// handleError writes the error envelope for err, choosing the status and the
// client message from its type.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

// currentUser returns the user resolved by the auth middleware. It writes a
// 401 and returns false when the route was mounted without the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		handleError(w, r, service.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}

// pathInt64 parses the named chi path parameter. A value that is not an
// integer is a validation error; range checks are left to the services.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, domain.NewValidationError(name + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return id, nil
}

// queryString returns a pointer to the query parameter value, or nil when
// the parameter is absent.
func queryString(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// queryInt parses an integer query parameter, returning fallback when absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return v, nil
}
