package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/platform/postgres"
)

var migrationCommands = map[string]bool{
	"up":        true,
	"up-by-one": true,
	"down":      true,
	"redo":      true,
	"reset":     true,
	"status":    true,
	"version":   true,
}

// handleMigrations runs a goose command against db using the embedded
// migrations.
func handleMigrations(ctx context.Context, db *sql.DB, command string, args []string, logger *slog.Logger) error {
	if !migrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	logger.Info("executing migrations", slog.String("command", command))
	if err := postgres.Migrate(ctx, db, command, args...); err != nil {
		logger.Error("migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return err
	}
	logger.Info("migrations finished", slog.String("command", command))
	return nil
}
