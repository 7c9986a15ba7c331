package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// PostgresAddressStore implements store.AddressStore on top of PostgreSQL.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
// If logger is nil, the default logger is used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

const addressColumns = `id, contact_id, street, city, province, country, postal_code`

// WithTx implements store.AddressStore.WithTx.
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &PostgresAddressStore{db: tx, logger: s.logger}
}

// Create implements store.AddressStore.Create.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		address.ContactID,
		address.Street,
		address.City,
		address.Province,
		address.Country,
		address.PostalCode,
	).Scan(&address.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("address references missing contact",
				slog.Int64("contact_id", address.ContactID))
			return MapError(err, nil)
		}
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return store.NewStoreError("address", "create", "insert failed", MapError(err, nil))
	}

	log.Info("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	return nil
}

// GetByContactAndID implements store.AddressStore.GetByContactAndID.
func (s *PostgresAddressStore) GetByContactAndID(
	ctx context.Context,
	contactID, id int64,
) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND contact_id = $2`

	address, err := scanAddress(s.db.QueryRowContext(ctx, query, id, contactID))
	if err != nil {
		mapped := MapError(err, store.ErrAddressNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return nil, store.NewStoreError("address", "get", "query failed", mapped)
	}
	return address, nil
}

// Update implements store.AddressStore.Update.
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE addresses
		SET street = $3, city = $4, province = $5, country = $6, postal_code = $7
		WHERE id = $1 AND contact_id = $2
	`
	result, err := s.db.ExecContext(ctx, query,
		address.ID,
		address.ContactID,
		address.Street,
		address.City,
		address.Province,
		address.Country,
		address.PostalCode,
	)
	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return store.NewStoreError("address", "update", "update failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Debug("address updated", slog.Int64("address_id", address.ID))
	return nil
}

// Delete implements store.AddressStore.Delete.
func (s *PostgresAddressStore) Delete(ctx context.Context, contactID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND contact_id = $2`,
		id, contactID,
	)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return store.NewStoreError("address", "delete", "delete failed", MapError(err, nil))
	}
	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address deleted", slog.Int64("address_id", id))
	return nil
}

// ListByContact implements store.AddressStore.ListByContact.
func (s *PostgresAddressStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, contactID)
	if err != nil {
		log.Error("failed to list addresses",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contactID))
		return nil, store.NewStoreError("address", "list", "query failed", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	addresses := []*domain.Address{}
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, store.NewStoreError("address", "list", "scan failed", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("address", "list", "row iteration failed", err)
	}
	return addresses, nil
}

// DeleteByContact implements store.AddressStore.DeleteByContact.
func (s *PostgresAddressStore) DeleteByContact(ctx context.Context, contactID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM addresses WHERE contact_id = $1`, contactID)
	if err != nil {
		log.Error("failed to delete contact addresses",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contactID))
		return 0, store.NewStoreError("address", "delete_by_contact", "delete failed", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("address", "delete_by_contact", "rows affected unavailable", err)
	}

	log.Debug("contact addresses deleted",
		slog.Int64("contact_id", contactID),
		slog.Int64("count", n))
	return n, nil
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var a domain.Address
	if err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.Street,
		&a.City,
		&a.Province,
		&a.Country,
		&a.PostalCode,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
