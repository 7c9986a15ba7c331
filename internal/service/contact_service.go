package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// ContactService manages the contacts of an authenticated user.
type ContactService interface {
	// CheckContactMustExist returns the contact with contactID owned by
	// username, or ErrContactNotFound.
	CheckContactMustExist(ctx context.Context, username string, contactID int64) (*domain.Contact, error)

	Create(ctx context.Context, user *domain.User, req CreateContactRequest) (*ContactResponse, error)
	Get(ctx context.Context, user *domain.User, contactID int64) (*ContactResponse, error)
	Update(ctx context.Context, user *domain.User, req UpdateContactRequest) (*ContactResponse, error)

	// Remove deletes the contact together with its addresses.
	Remove(ctx context.Context, user *domain.User, contactID int64) error

	// Search returns one page of the user's contacts matching req.
	Search(ctx context.Context, user *domain.User, req SearchContactRequest) (*SearchContactResult, error)
}

// ContactServiceImpl implements the ContactService interface
type ContactServiceImpl struct {
	db        *sql.DB
	contacts  store.ContactStore
	addresses store.AddressStore
	validator *Validator
	logger    *slog.Logger
}

// NewContactService creates a new ContactService. db is used to run the
// cascading delete in one transaction.
func NewContactService(
	db *sql.DB,
	contacts store.ContactStore,
	addresses store.AddressStore,
	validator *Validator,
	logger *slog.Logger,
) ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactServiceImpl{
		db:        db,
		contacts:  contacts,
		addresses: addresses,
		validator: validator,
		logger:    logger.With(slog.String("component", "contact_service")),
	}
}

// CheckContactMustExist implements ContactService.CheckContactMustExist
func (s *ContactServiceImpl) CheckContactMustExist(
	ctx context.Context,
	username string,
	contactID int64,
) (*domain.Contact, error) {
	return s.mustExist(ctx, s.contacts, username, contactID)
}

func (s *ContactServiceImpl) mustExist(
	ctx context.Context,
	contacts store.ContactStore,
	username string,
	contactID int64,
) (*domain.Contact, error) {
	contact, err := contacts.GetByIDAndUsername(ctx, contactID, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	return contact, nil
}

// Create implements ContactService.Create
func (s *ContactServiceImpl) Create(
	ctx context.Context,
	user *domain.User,
	req CreateContactRequest,
) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.String("username", user.Username))
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Get implements ContactService.Get
func (s *ContactServiceImpl) Get(
	ctx context.Context,
	user *domain.User,
	contactID int64,
) (*ContactResponse, error) {
	if err := positiveID("contact_id", contactID); err != nil {
		return nil, err
	}

	contact, err := s.CheckContactMustExist(ctx, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Update implements ContactService.Update
func (s *ContactServiceImpl) Update(
	ctx context.Context,
	user *domain.User,
	req UpdateContactRequest,
) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.CheckContactMustExist(ctx, user.Username, req.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.contacts.Update(ctx, contact); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	resp := ToContactResponse(contact)
	return &resp, nil
}

// Remove implements ContactService.Remove
func (s *ContactServiceImpl) Remove(ctx context.Context, user *domain.User, contactID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := positiveID("contact_id", contactID); err != nil {
		return err
	}

	var removedAddresses int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txContacts := s.contacts.WithTx(tx)

		if _, err := s.mustExist(ctx, txContacts, user.Username, contactID); err != nil {
			return err
		}

		n, err := s.addresses.WithTx(tx).DeleteByContact(ctx, contactID)
		if err != nil {
			return fmt.Errorf("failed to delete contact addresses: %w", err)
		}
		removedAddresses = n

		if err := txContacts.Delete(ctx, contactID, user.Username); err != nil {
			if store.IsNotFoundError(err) {
				return ErrContactNotFound
			}
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("contact removed",
		slog.Int64("contact_id", contactID),
		slog.Int64("addresses_removed", removedAddresses))
	return nil
}

// Search implements ContactService.Search
func (s *ContactServiceImpl) Search(
	ctx context.Context,
	user *domain.User,
	req SearchContactRequest,
) (*SearchContactResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	filter := store.ContactFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	var contacts []*domain.Contact
	if offset, ok := domain.Offset(req.Page, req.Size); ok {
		found, err := s.contacts.Search(ctx, filter, offset, req.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to search contacts: %w", err)
		}
		contacts = found
	} else {
		logger.FromContextOrDefault(ctx, s.logger).Debug("search page lies past any result",
			slog.Int("page", req.Page),
			slog.Int("size", req.Size))
	}

	total, err := s.contacts.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	data := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		data = append(data, ToContactResponse(c))
	}

	return &SearchContactResult{
		Data:   data,
		Paging: domain.NewPaging(req.Page, req.Size, total),
	}, nil
}
