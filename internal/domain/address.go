package domain

// Address is a postal address attached to a single contact.
type Address struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode *string
}
