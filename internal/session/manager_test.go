package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop/internal/mock"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCookie = "connect.sid"

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, st store.SessionStore, opts Options) *Manager {
	t.Helper()
	if opts.CookieName == "" {
		opts.CookieName = testCookie
	}
	if opts.Secret == "" {
		opts.Secret = "secret"
	}
	if opts.TTL == 0 {
		opts.TTL = time.Hour
	}

	m := NewManager(st, opts)
	m.now = func() time.Time { return testNow }

	n := 0
	m.newID = func() (string, error) {
		n++
		return "generated-" + string(rune('0'+n)), nil
	}
	return m
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: value})
	}
	return r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestManager_Load_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s, err := m.Load(context.Background(), requestWithCookie(""))
	require.NoError(t, err)
	assert.True(t, s.IsNew())
	assert.False(t, s.IsLoggedIn())
	assert.Equal(t, "generated-1", s.ID())
}

func TestManager_Load_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	forged := NewManager(st, Options{Secret: "other"}).signer.Sign("victim")

	s, err := m.Load(context.Background(), requestWithCookie(forged))
	require.NoError(t, err)
	assert.True(t, s.IsNew())
	assert.NotEqual(t, "victim", s.ID())
}

func TestManager_Load_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	st.EXPECT().Get(gomock.Any(), "abc").
		Return(&models.Session{IsLoggedIn: true, UserID: 5, ExpiresAt: testNow.Add(time.Minute)}, nil)

	s, err := m.Load(context.Background(), requestWithCookie(m.signer.Sign("abc")))
	require.NoError(t, err)
	assert.False(t, s.IsNew())
	assert.Equal(t, "abc", s.ID())
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, int64(5), s.UserID())
}

func TestManager_Load_UnknownOrExpired(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.Session
		err  error
	}{
		{name: "unknown id", err: store.ErrSessionNotFound},
		{name: "expired record", rec: &models.Session{UserID: 1, ExpiresAt: testNow.Add(-time.Second)}},
		{name: "undecodable record", err: fmt.Errorf("%w: %w", store.ErrDecodingSession, errors.New("unexpected end of JSON input"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mock.NewMockSessionStore(ctrl)
			m := newTestManager(t, st, Options{})

			st.EXPECT().Get(gomock.Any(), "abc").Return(tt.rec, tt.err)

			s, err := m.Load(context.Background(), requestWithCookie(m.signer.Sign("abc")))
			require.NoError(t, err)
			assert.True(t, s.IsNew())
			assert.False(t, s.HasUser())
			assert.NotEqual(t, "abc", s.ID())
		})
	}
}

func TestManager_Load_StoreUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	st.EXPECT().Get(gomock.Any(), "abc").Return(nil, errors.New("dial tcp: connection refused"))

	s, err := m.Load(context.Background(), requestWithCookie(m.signer.Sign("abc")))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrSessionStore)
}

func TestManager_Load_IDGenerationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestManager(t, mock.NewMockSessionStore(ctrl), Options{})
	m.newID = func() (string, error) { return "", ErrGeneratingID }

	_, err := m.Load(context.Background(), requestWithCookie(""))
	assert.ErrorIs(t, err, ErrGeneratingID)
}

// TestManager_Commit_UnmodifiedNewSession verifies that an untouched new
// session is neither stored nor sent to the client.
func TestManager_Commit_UnmodifiedNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s, err := m.Load(context.Background(), requestWithCookie(""))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))
	assert.Nil(t, sessionCookie(t, rec))
}

func TestManager_Commit_NewModifiedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := newSession("fresh")
	s.AddFlash(FlashInfo, "welcome")

	st.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *models.Session) error {
		assert.Equal(t, "fresh", rec.ID)
		assert.Equal(t, testNow.Add(time.Hour), rec.ExpiresAt)
		assert.Equal(t, []string{"welcome"}, rec.Flash[FlashInfo])
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, true))

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Zero(t, c.MaxAge, "no Max-Age unless configured")

	id, ok := m.signer.Verify(c.Value)
	require.True(t, ok)
	assert.Equal(t, "fresh", id)
	assert.False(t, s.IsNew())
	assert.False(t, s.Modified())
}

func TestManager_Commit_ExistingSessionKeepsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := &Session{data: models.Session{ID: "abc"}}
	s.AddFlash(FlashInfo, "x")

	st.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))
	assert.Nil(t, sessionCookie(t, rec))
}

func TestManager_Commit_MaxAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{CookieMaxAge: 2 * time.Hour})

	s := &Session{data: models.Session{ID: "abc"}}
	s.Set("k", "v")

	st.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.Equal(t, 7200, c.MaxAge)
}

func TestManager_Commit_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := newSession("fresh")
	s.LogIn(1)

	st.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	rec := httptest.NewRecorder()
	err := m.Commit(context.Background(), rec, s, false)
	assert.ErrorIs(t, err, ErrSessionStore)
	assert.Nil(t, sessionCookie(t, rec))
}

func TestManager_Regenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := &Session{data: models.Session{ID: "old", Flash: map[string][]string{"info": {"x"}}}}
	require.NoError(t, m.Regenerate(s))
	s.LogIn(9)

	assert.NotEqual(t, "old", s.ID())
	assert.Empty(t, s.Record().Flash)

	gomock.InOrder(
		st.EXPECT().Delete(gomock.Any(), "old").Return(nil),
		st.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	id, ok := m.signer.Verify(c.Value)
	require.True(t, ok)
	assert.Equal(t, s.ID(), id)
}

func TestManager_Destroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := &Session{data: models.Session{ID: "abc", IsLoggedIn: true, UserID: 3}}
	m.Destroy(s)

	st.EXPECT().Delete(gomock.Any(), "abc").Return(nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestManager_Destroy_NewSessionTouchesNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)
	m := newTestManager(t, st, Options{})

	s := newSession("fresh")
	m.Destroy(s)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), rec, s, false))
}
