package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

// postgresSessionStore keeps sessions as JSONB documents in the "sessions"
// table. Expired rows are invisible to Get and purged by DeleteExpired.
type postgresSessionStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// PostgresSessionStore is a [SessionStore] that also needs periodic sweeping.
type PostgresSessionStore interface {
	SessionStore
	ExpiredSessionSweeper
}

func NewPostgresSessionStore(db *DB, logger *logger.Logger) PostgresSessionStore {
	logger.Debug().Msg("creating postgres session store")
	return &postgresSessionStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *postgresSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var data []byte
	err := s.DB.QueryRowContext(ctx, getSession, sessionID, s.now().UTC()).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "postgresSessionStore.Get").Msg("failed to load session")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	sess := new(models.Session)
	if err = json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	sess.ID = sessionID

	return sess, nil
}

func (s *postgresSessionStore) Save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	if _, err = s.DB.ExecContext(ctx, saveSession, sess.ID, data, sess.ExpiresAt.UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgresSessionStore.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *postgresSessionStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgresSessionStore.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpired removes every session that expired at or before now and
// returns the number of removed records.
func (s *postgresSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, deleteExpiredSessions, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
