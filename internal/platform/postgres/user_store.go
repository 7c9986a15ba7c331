package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// PostgresUserStore implements store.UserStore on top of PostgreSQL.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = `username, password, name, token`

// Create implements store.UserStore.Create.
// Returns store.ErrUsernameExists on a primary key collision.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (username, password, name, token)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, user.Username, user.Password, user.Name, user.Token)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already taken", slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return store.NewStoreError("user", "create", "insert failed", MapError(err, nil))
	}

	log.Info("user created", slog.String("username", user.Username))
	return nil
}

// ExistsByUsername implements store.UserStore.ExistsByUsername.
func (s *PostgresUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return false, store.NewStoreError("user", "exists", "query failed", err)
	}
	return exists, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
// Returns store.ErrUserNotFound if no row matches.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return s.getOne(ctx, query, username)
}

// GetByToken implements store.UserStore.GetByToken.
// Returns store.ErrUserNotFound if no user holds the token.
func (s *PostgresUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = $1`
	return s.getOne(ctx, query, token)
}

func (s *PostgresUserStore) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.Username,
		&user.Password,
		&user.Name,
		&user.Token,
	)
	if err != nil {
		mapped := MapError(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "query failed", mapped)
	}
	return &user, nil
}

// Update implements store.UserStore.Update. Only name and password are written.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET name = $2, password = $3 WHERE username = $1`,
		user.Username, user.Name, user.Password,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return store.NewStoreError("user", "update", "update failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("user updated", slog.String("username", user.Username))
	return nil
}

// SetToken implements store.UserStore.SetToken. A nil token clears the session.
func (s *PostgresUserStore) SetToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET token = $2 WHERE username = $1`,
		username, token,
	)
	if err != nil {
		log.Error("failed to set user token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return store.NewStoreError("user", "set_token", "update failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("user token updated",
		slog.String("username", username),
		slog.Bool("cleared", token == nil))
	return nil
}
