package session

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// Flash categories rendered by the layout template.
const (
	FlashError = "error"
	FlashInfo  = "info"
)

// Session is the request-scoped handle of a session record. It tracks
// whether the record is new and whether it changed, so that the manager
// only writes what needs writing. A Session must not be shared between
// requests.
type Session struct {
	data models.Session

	isNew      bool
	modified   bool
	destroyed  bool
	previousID string
}

func newSession(id string) *Session {
	return &Session{
		data:  models.Session{ID: id},
		isNew: true,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.data.ID }

// IsNew reports whether the session has not been persisted yet.
func (s *Session) IsNew() bool { return s.isNew }

// Modified reports whether the session has unsaved changes.
func (s *Session) Modified() bool { return s.modified }

// IsLoggedIn reports the session's logged-in flag.
func (s *Session) IsLoggedIn() bool { return s.data.IsLoggedIn }

// UserID returns the referenced user id, zero when there is none.
func (s *Session) UserID() int64 { return s.data.UserID }

// HasUser reports whether the session references a user.
func (s *Session) HasUser() bool { return s.data.HasUser() }

// Record returns a copy of the underlying record.
func (s *Session) Record() models.Session { return s.data }

// LogIn marks the session as authenticated for userID.
func (s *Session) LogIn(userID int64) {
	s.data.IsLoggedIn = true
	s.data.UserID = userID
	s.modified = true
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.data.Values[key]
	return v, ok
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	if s.data.Values == nil {
		s.data.Values = make(map[string]string)
	}
	s.data.Values[key] = value
	s.modified = true
}

// Pop returns the value stored under key and removes it.
func (s *Session) Pop(key string) (string, bool) {
	v, ok := s.data.Values[key]
	if ok {
		delete(s.data.Values, key)
		s.modified = true
	}
	return v, ok
}

// AddFlash queues a one-time message of the given kind.
func (s *Session) AddFlash(kind, msg string) {
	if s.data.Flash == nil {
		s.data.Flash = make(map[string][]string)
	}
	s.data.Flash[kind] = append(s.data.Flash[kind], msg)
	s.modified = true
}

// Flashes returns and consumes the messages of the given kind.
func (s *Session) Flashes(kind string) []string {
	msgs, ok := s.data.Flash[kind]
	if !ok {
		return nil
	}
	delete(s.data.Flash, kind)
	s.modified = true
	return msgs
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the session middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
