package store

import (
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every repository and the session store used by the
// service layer and the HTTP pipeline.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	SessionStore      SessionStore

	// SessionSweeper is nil when the session backend expires records itself.
	SessionSweeper ExpiredSessionSweeper
}

// NewStorages wires the repositories on db. Sessions go to Redis when
// redisClient is non-nil and to the "sessions" table otherwise.
func NewStorages(db *DB, redisClient *redis.Client, log *logger.Logger) *Storages {
	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
	}

	if redisClient != nil {
		storages.SessionStore = NewRedisSessionStore(redisClient, log)
		return storages
	}

	pgSessions := NewPostgresSessionStore(db, log)
	storages.SessionStore = pgSessions
	storages.SessionSweeper = pgSessions

	return storages
}
