package service

import "github.com/phrazzld/contacts-api/internal/domain"

// RegisterUserRequest is the input of UserService.Register.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginUserRequest is the input of UserService.Login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is the input of UserService.Update. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitnil,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,max=100"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Token    *string `json:"token,omitempty"`
}

// CreateContactRequest is the input of ContactService.Create.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=3,max=100"`
	LastName  *string `json:"last_name"  validate:"omitnil,min=3,max=100"`
	Email     *string `json:"email"      validate:"omitnil,min=3,max=100,email"`
	Phone     *string `json:"phone"      validate:"omitnil,min=3,max=20"`
}

// UpdateContactRequest is the input of ContactService.Update. ID is taken
// from the request path.
type UpdateContactRequest struct {
	ID        int64   `json:"id"         validate:"gte=1"`
	FirstName string  `json:"first_name" validate:"required,min=3,max=100"`
	LastName  *string `json:"last_name"  validate:"omitnil,min=3,max=100"`
	Email     *string `json:"email"      validate:"omitnil,min=3,max=100,email"`
	Phone     *string `json:"phone"      validate:"omitnil,min=3,max=20"`
}

// SearchContactRequest is the input of ContactService.Search. Page and Size
// defaults are applied by the caller.
type SearchContactRequest struct {
	Name  *string `json:"name"  validate:"omitnil,min=3,max=100"`
	Email *string `json:"email" validate:"omitnil,min=3,max=100,email"`
	Phone *string `json:"phone" validate:"omitnil,min=3,max=20"`
	Page  int     `json:"page"  validate:"gte=1"`
	Size  int     `json:"size"  validate:"gte=1"`
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// ToContactResponse projects a contact.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// SearchContactResult is a page of contacts with its paging metadata.
type SearchContactResult struct {
	Data   []ContactResponse
	Paging domain.Paging
}

// CreateAddressRequest is the input of AddressService.Create.
type CreateAddressRequest struct {
	ContactID  int64   `json:"contact_id"  validate:"gte=1"`
	Street     *string `json:"street"      validate:"omitnil,min=3,max=255"`
	City       *string `json:"city"        validate:"omitnil,min=3,max=100"`
	Province   *string `json:"province"    validate:"omitnil,min=3,max=100"`
	Country    string  `json:"country"     validate:"required,min=3,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitnil,min=3,max=10"`
}

// GetAddressRequest identifies one address of one contact.
type GetAddressRequest struct {
	ContactID int64 `json:"contact_id" validate:"gte=1"`
	AddressID int64 `json:"address_id" validate:"gte=1"`
}

// RemoveAddressRequest identifies the address to delete.
type RemoveAddressRequest = GetAddressRequest

// UpdateAddressRequest is the input of AddressService.Update.
type UpdateAddressRequest struct {
	ContactID  int64   `json:"contact_id"  validate:"gte=1"`
	AddressID  int64   `json:"address_id"  validate:"gte=1"`
	Street     *string `json:"street"      validate:"omitnil,min=3,max=255"`
	City       *string `json:"city"        validate:"omitnil,min=3,max=100"`
	Province   *string `json:"province"    validate:"omitnil,min=3,max=100"`
	Country    string  `json:"country"     validate:"required,min=3,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitnil,min=3,max=10"`
}

// AddressResponse is the public projection of an address.
type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// ToAddressResponse projects an address.
func ToAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
