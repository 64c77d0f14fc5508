package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier used during authentication
	// and embedded as the "sub" claim of issued tokens.
	Username string `json:"username"`

	// Email is the optional contact address of the user.
	Email string `json:"email,omitempty"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a derived value (hash output), never plaintext,
	// and is never serialized into API responses or logs.
	HashedPassword string `json:"-"`

	// Disabled marks the account as deactivated. The flag is persisted and
	// returned with the profile but is not consulted when resolving a
	// bearer token into a user.
	Disabled bool `json:"disabled"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
