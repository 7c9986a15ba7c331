package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// UserHandler serves registration, login and the current-user endpoints.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.users.Register(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("user registered via API",
		slog.String("username", resp.Username))
	shared.RespondWithData(w, r, http.StatusCreated, resp)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.users.Login(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Get handles GET /api/users/current.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, h.users.Get(r.Context(), user))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := h.users.Update(r.Context(), user, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, resp)
}

// Logout handles DELETE /api/users/current.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.users.Logout(r.Context(), user); err != nil {
		handleError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}
