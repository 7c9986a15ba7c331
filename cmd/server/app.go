package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/metrics"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds the shared dependencies so they can be wired once and
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	authenticator auth.Authenticator
	handlers      api.Handlers
	metrics       *metrics.Metrics
}

// newApplication wires stores, services and handlers on top of an already
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	users := postgres.NewPostgresUserStore(db, logger)
	contacts := postgres.NewPostgresContactStore(db, logger)
	addresses := postgres.NewPostgresAddressStore(db, logger)

	validator := service.NewValidator()
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userService := service.NewUserService(users, hasher, auth.NewUUIDTokenGenerator(), validator, logger)
	contactService := service.NewContactService(db, contacts, addresses, validator, logger)
	addressService := service.NewAddressService(contactService, addresses, validator, logger)

	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RegisterDB(db)

	app := &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		authenticator: auth.NewTokenAuthenticator(users, logger),
		metrics:       m,
		handlers: api.Handlers{
			Users: api.NewUserHandler(userService, logger),
			Contacts: api.NewContactHandler(
				contactService,
				cfg.API.DefaultPage,
				cfg.API.DefaultPageSize,
				logger,
			),
			Addresses: api.NewAddressHandler(addressService, logger),
		},
	}

	logger.Info("application initialized",
		slog.Int("bcrypt_cost", hasher.Cost()))
	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		app.logger.Error("server error", slog.String("error", err.Error()))
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
