package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "sess:"

// redisSessionStore keeps sessions as JSON values whose Redis TTL matches
// the session expiry, so no sweeping is required.
type redisSessionStore struct {
	client *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

func NewRedisSessionStore(client *redis.Client, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "redisSessionStore.Get").Msg("failed to load session")
		return nil, fmt.Errorf("redis get: %w", err)
	}

	sess := new(models.Session)
	if err = json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	if sess.IsExpired(s.now()) {
		return nil, ErrSessionNotFound
	}
	sess.ID = sessionID

	return sess, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sess *models.Session) error {
	ttl := sessionTTL(sess, s.now())
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	if err = s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisSessionStore.Save").Msg("failed to save session")
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisSessionStore.Delete").Msg("failed to delete session")
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// sessionTTL is the remaining lifetime of sess at now. A session without an
// expiry is kept for a day.
func sessionTTL(sess *models.Session, now time.Time) time.Duration {
	if sess.ExpiresAt.IsZero() {
		return 24 * time.Hour
	}
	return sess.ExpiresAt.Sub(now)
}
