// Command seed inserts a demo user with a fixed session token and a contact,
// for trying the API locally. Run migrations first.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/redact"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

const (
	seedUsername = "test"
	seedPassword = "test"
	seedToken    = "test"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost).Hash(seedPassword)
	if err != nil {
		return err
	}

	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		users := postgres.NewPostgresUserStore(tx, l)
		contacts := postgres.NewPostgresContactStore(tx, l)

		exists, err := users.ExistsByUsername(ctx, seedUsername)
		if err != nil {
			return fmt.Errorf("failed to check seed user: %w", err)
		}
		if exists {
			l.Info("seed user already exists", slog.String("username", seedUsername))
			return nil
		}

		err = users.Create(ctx, &domain.User{Username: seedUsername, Password: hash, Name: "Test User"})
		if err != nil {
			return fmt.Errorf("failed to create seed user: %w", redactedError{err})
		}

		token := seedToken
		if err := users.SetToken(ctx, seedUsername, &token); err != nil {
			return fmt.Errorf("failed to set seed token: %w", err)
		}

		email := "john@example.com"
		contact := &domain.Contact{Username: seedUsername, FirstName: "John", Email: &email}
		if err := contacts.Create(ctx, contact); err != nil {
			return fmt.Errorf("failed to create seed contact: %w", err)
		}

		l.Info("seeded database",
			slog.String("username", seedUsername),
			slog.Int64("contact_id", contact.ID))
		return nil
	})
}

// redactedError keeps hashes and DSNs out of the fatal log line.
type redactedError struct{ err error }

func (e redactedError) Error() string { return redact.Error(e.err) }
func (e redactedError) Unwrap() error { return e.err }
