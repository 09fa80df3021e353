package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists shop accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no user has the id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProductRepository persists catalogue products.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)

	// DeleteProduct removes a product owned by userID and returns the
	// deleted record so that its image can be cleaned up.
	DeleteProduct(ctx context.Context, productID, userID int64) (models.Product, error)
}

// ProductFilter narrows ListProducts. Zero fields do not filter.
type ProductFilter struct {
	UserID int64
	Limit  uint64
	Offset uint64
}

// SessionStore persists session records keyed by session id.
type SessionStore interface {
	// Get returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, sessionID string) (*models.Session, error)

	// Save creates or replaces the record; it lives until sess.ExpiresAt.
	Save(ctx context.Context, sess *models.Session) error

	// Delete removes the record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// ExpiredSessionSweeper is implemented by session stores that need expired
// records to be purged explicitly.
type ExpiredSessionSweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
