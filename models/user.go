package models

import "time"

// User represents a shop account used for authentication and for
// attributing products to their creator.
// PasswordHash must never be rendered or logged.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user shown in the navigation bar.
	Name string `json:"name"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PasswordHash holds the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to product management pages.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
