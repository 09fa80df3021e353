package models

import "time"

// Session is the server-side state associated with a client through an
// opaque identifier carried in a signed cookie.
type Session struct {
	// ID is the opaque session identifier (base64url, 256 bits of entropy).
	ID string `json:"id"`

	// IsLoggedIn is set on successful login and read by templates as
	// "isAuthenticated".
	IsLoggedIn bool `json:"is_logged_in"`

	// UserID references the logged-in user; zero means no reference.
	UserID int64 `json:"user_id,omitempty"`

	// Flash holds one-time messages keyed by category ("error", "info").
	Flash map[string][]string `json:"flash,omitempty"`

	// Values holds small string values kept across requests, such as the
	// page to return to after login.
	Values map[string]string `json:"values,omitempty"`

	// ExpiresAt is the absolute expiry time enforced by the store.
	ExpiresAt time.Time `json:"expires_at"`
}

// HasUser reports whether the session references a user record.
func (s *Session) HasUser() bool {
	return s != nil && s.UserID != 0
}

// IsExpired reports whether the session is past its expiry time at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
