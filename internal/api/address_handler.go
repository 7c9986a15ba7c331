package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// AddressHandler serves the /api/contacts/{contactId}/addresses endpoints.
type AddressHandler struct {
	addresses service.AddressService
	logger    *slog.Logger
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addresses service.AddressService, logger *slog.Logger) *AddressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressHandler{
		addresses: addresses,
		logger:    logger.With(slog.String("component", "address_handler")),
	}
}

// pathIDs extracts the contact id and, when withAddress is set, the address id.
func pathIDs(w http.ResponseWriter, r *http.Request, withAddress bool) (int64, int64, bool) {
	contactID, err := pathInt64(r, ContactIDParam)
	if err != nil {
		handleError(w, r, err)
		return 0, 0, false
	}
	if !withAddress {
		return contactID, 0, true
	}
	addressID, err := pathInt64(r, AddressIDParam)
	if err != nil {
		handleError(w, r, err)
		return 0, 0, false
	}
	return contactID, addressID, true
}

// Create handles POST /api/contacts/{contactId}/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, _, ok := pathIDs(w, r, false)
	if !ok {
		return
	}

	var req service.CreateAddressRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	req.ContactID = contactID

	resp, err := h.addresses.Create(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, resp)
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	resp, err := h.addresses.Get(r.Context(), user, service.GetAddressRequest{
		ContactID: contactID,
		AddressID: addressID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	var req service.UpdateAddressRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	req.ContactID = contactID
	req.AddressID = addressID

	resp, err := h.addresses.Update(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Remove handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	err := h.addresses.Remove(r.Context(), user, service.RemoveAddressRequest{
		ContactID: contactID,
		AddressID: addressID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("address removed via API",
		slog.Int64("contact_id", contactID),
		slog.Int64("address_id", addressID))
	shared.RespondWithData(w, r, http.StatusOK, true)
}

// List handles GET /api/contacts/{contactId}/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	contactID, _, ok := pathIDs(w, r, false)
	if !ok {
		return
	}

	resp, err := h.addresses.List(r.Context(), user, contactID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}
