package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// PostgresContactStore implements store.ContactStore on top of PostgreSQL.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// If logger is nil, the default logger is used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

const contactColumns = `id, username, first_name, last_name, email, phone`

// WithTx implements store.ContactStore.WithTx.
func (s *PostgresContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &PostgresContactStore{db: tx, logger: s.logger}
}

// Create implements store.ContactStore.Create.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		contact.Username,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	).Scan(&contact.ID)
	if err != nil {
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("username", contact.Username))
		return store.NewStoreError("contact", "create", "insert failed", MapError(err, nil))
	}

	log.Info("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.String("username", contact.Username))
	return nil
}

// GetByIDAndUsername implements store.ContactStore.GetByIDAndUsername.
func (s *PostgresContactStore) GetByIDAndUsername(
	ctx context.Context,
	id int64,
	username string,
) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND username = $2`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id, username))
	if err != nil {
		mapped := MapError(err, store.ErrContactNotFound)
		if store.IsNotFoundError(mapped) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("contact not found",
				slog.Int64("contact_id", id),
				slog.String("username", username))
			return nil, mapped
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return nil, store.NewStoreError("contact", "get", "query failed", mapped)
	}
	return contact, nil
}

// Update implements store.ContactStore.Update.
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE contacts
		SET first_name = $3, last_name = $4, email = $5, phone = $6
		WHERE id = $1 AND username = $2
	`
	result, err := s.db.ExecContext(ctx, query,
		contact.ID,
		contact.Username,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	)
	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return store.NewStoreError("contact", "update", "update failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Debug("contact updated", slog.Int64("contact_id", contact.ID))
	return nil
}

// Delete implements store.ContactStore.Delete.
func (s *PostgresContactStore) Delete(ctx context.Context, id int64, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND username = $2`,
		id, username,
	)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return store.NewStoreError("contact", "delete", "delete failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact deleted", slog.Int64("contact_id", id))
	return nil
}

// maxSearchPrealloc caps the capacity reserved for search results.
const maxSearchPrealloc = 100

// Search implements store.ContactStore.Search.
func (s *PostgresContactStore) Search(
	ctx context.Context,
	filter store.ContactFilter,
	offset int64,
	limit int,
) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := contactWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM contacts WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)-1, len(args),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to search contacts",
			slog.String("error", err.Error()),
			slog.String("username", filter.Username))
		return nil, store.NewStoreError("contact", "search", "query failed", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	// limit comes from the client, so it only bounds the query.
	contacts := make([]*domain.Contact, 0, min(limit, maxSearchPrealloc))
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, store.NewStoreError("contact", "search", "scan failed", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("contact", "search", "row iteration failed", err)
	}

	log.Debug("contacts searched",
		slog.String("username", filter.Username),
		slog.Int("count", len(contacts)))
	return contacts, nil
}

// Count implements store.ContactStore.Count.
func (s *PostgresContactStore) Count(ctx context.Context, filter store.ContactFilter) (int64, error) {
	where, args := contactWhere(filter)
	query := `SELECT COUNT(*) FROM contacts WHERE ` + where

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count contacts",
			slog.String("error", err.Error()),
			slog.String("username", filter.Username))
		return 0, store.NewStoreError("contact", "count", "query failed", err)
	}
	return total, nil
}

// contactWhere builds the WHERE clause shared by Search and Count.
// strpos gives a literal, case-sensitive substring match without LIKE escaping.
func contactWhere(filter store.ContactFilter) (string, []any) {
	clauses := []string{"username = $1"}
	args := []any{filter.Username}

	if filter.Name != nil {
		args = append(args, *filter.Name)
		n := len(args)
		clauses = append(clauses,
			fmt.Sprintf("(strpos(first_name, $%d) > 0 OR strpos(last_name, $%d) > 0)", n, n))
	}
	if filter.Email != nil {
		args = append(args, *filter.Email)
		clauses = append(clauses, fmt.Sprintf("strpos(email, $%d) > 0", len(args)))
	}
	if filter.Phone != nil {
		args = append(args, *filter.Phone)
		clauses = append(clauses, fmt.Sprintf("strpos(phone, $%d) > 0", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(
		&c.ID,
		&c.Username,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
