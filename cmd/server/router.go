package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/contacts-api/internal/api"
	apiMiddleware "github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/api/shared"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the router with the standard middleware stack, the
// health and metrics endpoints and the /api routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Middleware)

	r.Get("/health", app.handleHealth)
	r.Handle("/metrics", app.metrics.Handler())

	api.RegisterRoutes(r, app.handlers, apiMiddleware.NewAuthMiddleware(app.authenticator))

	return r
}

func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database is unavailable", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
