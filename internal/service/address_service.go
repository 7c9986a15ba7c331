package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// AddressService manages the addresses of contacts owned by the caller.
// Every operation first checks contact ownership through ContactService.
type AddressService interface {
	Create(ctx context.Context, user *domain.User, req CreateAddressRequest) (*AddressResponse, error)
	Get(ctx context.Context, user *domain.User, req GetAddressRequest) (*AddressResponse, error)
	Update(ctx context.Context, user *domain.User, req UpdateAddressRequest) (*AddressResponse, error)
	Remove(ctx context.Context, user *domain.User, req RemoveAddressRequest) error
	List(ctx context.Context, user *domain.User, contactID int64) ([]AddressResponse, error)
}

// AddressServiceImpl implements the AddressService interface
type AddressServiceImpl struct {
	contacts  ContactService
	addresses store.AddressStore
	validator *Validator
	logger    *slog.Logger
}

// NewAddressService creates a new AddressService
func NewAddressService(
	contacts ContactService,
	addresses store.AddressStore,
	validator *Validator,
	logger *slog.Logger,
) AddressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressServiceImpl{
		contacts:  contacts,
		addresses: addresses,
		validator: validator,
		logger:    logger.With(slog.String("component", "address_service")),
	}
}

func (s *AddressServiceImpl) checkAddressMustExist(
	ctx context.Context,
	contactID, addressID int64,
) (*domain.Address, error) {
	address, err := s.addresses.GetByContactAndID(ctx, contactID, addressID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to load address: %w", err)
	}
	return address, nil
}

// Create implements AddressService.Create
func (s *AddressServiceImpl) Create(
	ctx context.Context,
	user *domain.User,
	req CreateAddressRequest,
) (*AddressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	resp := ToAddressResponse(address)
	return &resp, nil
}

// Get implements AddressService.Get
func (s *AddressServiceImpl) Get(
	ctx context.Context,
	user *domain.User,
	req GetAddressRequest,
) (*AddressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}
	address, err := s.checkAddressMustExist(ctx, req.ContactID, req.AddressID)
	if err != nil {
		return nil, err
	}

	resp := ToAddressResponse(address)
	return &resp, nil
}

// Update implements AddressService.Update
func (s *AddressServiceImpl) Update(
	ctx context.Context,
	user *domain.User,
	req UpdateAddressRequest,
) (*AddressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return nil, err
	}
	address, err := s.checkAddressMustExist(ctx, req.ContactID, req.AddressID)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode

	if err := s.addresses.Update(ctx, address); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	resp := ToAddressResponse(address)
	return &resp, nil
}

// Remove implements AddressService.Remove
func (s *AddressServiceImpl) Remove(ctx context.Context, user *domain.User, req RemoveAddressRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	if _, err := s.contacts.CheckContactMustExist(ctx, user.Username, req.ContactID); err != nil {
		return err
	}
	if _, err := s.checkAddressMustExist(ctx, req.ContactID, req.AddressID); err != nil {
		return err
	}

	if err := s.addresses.Delete(ctx, req.ContactID, req.AddressID); err != nil {
		if store.IsNotFoundError(err) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("failed to delete address: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("address removed",
		slog.Int64("address_id", req.AddressID),
		slog.Int64("contact_id", req.ContactID))
	return nil
}

// List implements AddressService.List
func (s *AddressServiceImpl) List(
	ctx context.Context,
	user *domain.User,
	contactID int64,
) ([]AddressResponse, error) {
	if err := positiveID("contact_id", contactID); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addresses.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, ToAddressResponse(a))
	}
	return out, nil
}
