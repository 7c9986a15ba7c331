package domain

// Contact is a person in a user's address book. Username names the owning
// user and never changes after creation.
type Contact struct {
	ID        int64
	Username  string
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
}

// OwnedBy reports whether the contact belongs to username.
func (c *Contact) OwnedBy(username string) bool {
	return c.Username == username
}
