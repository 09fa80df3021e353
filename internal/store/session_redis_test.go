package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "sess:abc", sessionKey("abc"))
}

func TestSessionTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Hour, sessionTTL(&models.Session{ExpiresAt: now.Add(time.Hour)}, now))
	assert.Equal(t, 24*time.Hour, sessionTTL(&models.Session{}, now))
	assert.Negative(t, int64(sessionTTL(&models.Session{ExpiresAt: now.Add(-time.Second)}, now)))
}

// TestRedisSessionStore_Unreachable verifies that an unreachable server is
// reported as an error and never as a missing session.
func TestRedisSessionStore_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisSessionStore(client, logger.Nop())
	ctx := context.Background()

	_, err := s.Get(ctx, "sid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	err = s.Save(ctx, &models.Session{ID: "sid", ExpiresAt: time.Now().Add(time.Hour)})
	assert.Error(t, err)

	assert.Error(t, s.Delete(ctx, "sid"))
}

func TestNewRedisClient_PingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, configRedis("127.0.0.1:1"), logger.Nop())
	assert.Error(t, err)
}
