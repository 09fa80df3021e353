package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
)

// SessionSweeper periodically deletes expired session records from stores
// that do not expire them on their own.
type SessionSweeper struct {
	sweeper  store.ExpiredSessionSweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sweeper store.ExpiredSessionSweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs a single purge and returns the number of deleted records.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	deleted, err := s.sweeper.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("error deleting expired sessions")
		return 0
	}

	if deleted > 0 {
		s.logger.Debug().Int64("deleted", deleted).Msg("expired sessions deleted")
	}

	return deleted
}
