package domain

// User is a registered account. Username is the immutable primary identity;
// Token is the current session credential and is nil while logged out.
type User struct {
	Username string  `json:"username"`
	Password string  `json:"-"` // bcrypt hash, never exposed
	Name     string  `json:"name"`
	Token    *string `json:"token,omitempty"`
}

// HasToken reports whether the user currently holds a session token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}
