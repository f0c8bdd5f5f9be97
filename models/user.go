package models

// User represents a registered account used for authentication and post
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// database at registration time.
	UserID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is used only
	// for credential verification at login.
	PasswordHash string `json:"-"`
}

// IsAnonymous reports whether u represents the absence of a resolved
// identity. The zero User is anonymous; any persisted user has a non-zero id.
func (u User) IsAnonymous() bool {
	return u.UserID == 0
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
