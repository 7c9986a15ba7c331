package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// MaxBodyBytes bounds the size of accepted JSON request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Malformed or oversized bodies
// are reported as *domain.ValidationError so they map to 400.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("request body is required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError(fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit))
		default:
			return domain.NewValidationError("request body is not valid JSON")
		}
	}
	return nil
}
