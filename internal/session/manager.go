package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
)

// Options configures a [Manager].
type Options struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// Secret signs the cookie value.
	Secret string

	// TTL is how long a record lives after its last save.
	TTL time.Duration

	// CookieMaxAge sets Max-Age on the cookie; zero issues a browser-session
	// cookie.
	CookieMaxAge time.Duration
}

// Manager loads, saves and destroys sessions for HTTP requests.
type Manager struct {
	store  store.SessionStore
	signer *utils.Signer
	opts   Options

	now   func() time.Time
	newID func() (string, error)
}

func NewManager(st store.SessionStore, opts Options) *Manager {
	return &Manager{
		store:  st,
		signer: utils.NewSigner(opts.Secret),
		opts:   opts,
		now:    time.Now,
		newID:  GenerateID,
	}
}

// Load returns the session referenced by the request cookie.
//
// A missing cookie, a bad signature, an unknown or expired id or a record
// that cannot be decoded yields a fresh, not yet persisted session. Store
// failures are returned wrapped in [ErrSessionStore].
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	if id, ok := m.cookieSessionID(r); ok {
		rec, err := m.store.Get(ctx, id)
		switch {
		case err == nil && rec != nil && !rec.IsExpired(m.now()):
			rec.ID = id
			return &Session{data: *rec}, nil
		case err == nil, errors.Is(err, store.ErrSessionNotFound):
			logger.FromContext(ctx).Debug().Msg("session cookie references no live session")
		case errors.Is(err, store.ErrDecodingSession):
			logger.FromContext(ctx).Warn().Err(err).Msg("discarding undecodable session record")
		default:
			return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
		}
	}

	id, err := m.newID()
	if err != nil {
		return nil, err
	}

	return newSession(id), nil
}

func (m *Manager) cookieSessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	return m.signer.Verify(c.Value)
}

// Regenerate gives s a fresh id and empties it. The old record is removed
// on the next commit.
func (m *Manager) Regenerate(s *Session) error {
	id, err := m.newID()
	if err != nil {
		return err
	}

	if !s.isNew && s.previousID == "" {
		s.previousID = s.data.ID
	}
	s.data = newSession(id).data
	s.modified = true

	return nil
}

// Destroy marks s for deletion; the record and cookie are removed on commit.
func (m *Manager) Destroy(s *Session) {
	s.destroyed = true
}

// Commit persists the changes of s and sets or clears the cookie on w.
// It must run before the response headers are written.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session, secure bool) error {
	opts := cookieOptions{
		Name:     m.opts.CookieName,
		MaxAge:   m.opts.CookieMaxAge,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	if s.destroyed {
		if err := m.deleteRecords(ctx, s); err != nil {
			return err
		}
		clearCookie(w, opts)
		return nil
	}

	if !s.modified {
		return nil
	}

	if s.previousID != "" {
		if err := m.store.Delete(ctx, s.previousID); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionStore, err)
		}
	}

	s.data.ExpiresAt = m.now().Add(m.opts.TTL).UTC()
	if err := m.store.Save(ctx, &s.data); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	if s.isNew || s.previousID != "" || m.opts.CookieMaxAge > 0 {
		setCookie(w, m.signer.Sign(s.data.ID), opts)
	}

	s.isNew = false
	s.modified = false
	s.previousID = ""

	return nil
}

func (m *Manager) deleteRecords(ctx context.Context, s *Session) error {
	ids := make([]string, 0, 2)
	if s.previousID != "" {
		ids = append(ids, s.previousID)
	}
	if !s.isNew {
		ids = append(ids, s.data.ID)
	}

	for _, id := range ids {
		if err := m.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionStore, err)
		}
	}

	return nil
}
