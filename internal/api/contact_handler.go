package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// ContactHandler serves the /api/contacts endpoints.
type ContactHandler struct {
	contacts        service.ContactService
	defaultPage     int
	defaultPageSize int
	logger          *slog.Logger
}

// NewContactHandler creates a new ContactHandler. defaultPage and
// defaultPageSize fill in search parameters the client omits.
func NewContactHandler(
	contacts service.ContactService,
	defaultPage, defaultPageSize int,
	logger *slog.Logger,
) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contacts:        contacts,
		defaultPage:     defaultPage,
		defaultPageSize: defaultPageSize,
		logger:          logger.With(slog.String("component", "contact_handler")),
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.contacts.Create(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, resp)
}

// Get handles GET /api/contacts/{contactId}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, err := pathInt64(r, ContactIDParam)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.contacts.Get(r.Context(), user, contactID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/contacts/{contactId}. The id in the path wins
// over any id in the body.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, err := pathInt64(r, ContactIDParam)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req service.UpdateContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	req.ID = contactID

	resp, err := h.contacts.Update(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Remove handles DELETE /api/contacts/{contactId}.
func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, err := pathInt64(r, ContactIDParam)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := h.contacts.Remove(r.Context(), user, contactID); err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("contact removed via API",
		slog.Int64("contact_id", contactID))

	shared.RespondWithData(w, r, http.StatusOK, true)
}

// Search handles GET /api/contacts?name=&email=&phone=&page=&size=.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := queryInt(r, "page", h.defaultPage)
	if err != nil {
		handleError(w, r, err)
		return
	}
	size, err := queryInt(r, "size", h.defaultPageSize)
	if err != nil {
		handleError(w, r, err)
		return
	}

	req := service.SearchContactRequest{
		Name:  queryString(r, "name"),
		Email: queryString(r, "email"),
		Phone: queryString(r, "phone"),
		Page:  page,
		Size:  size,
	}

	result, err := h.contacts.Search(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, result.Data, result.Paging)
}
