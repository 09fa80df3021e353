package service

import (
	"context"

	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService turns the user reference held by a session into a user
// record.
type IdentityService interface {
	// ResolveUser loads the user with userID. A zero userID means the
	// session carries no reference and no lookup is made. A reference to a
	// user that no longer exists yields found == false and a nil error.
	ResolveUser(ctx context.Context, userID int64) (user models.User, found bool, err error)
}

type AuthService interface {
	Signup(ctx context.Context, form models.SignupForm) (models.User, error)
	Login(ctx context.Context, form models.LoginForm) (models.User, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, userID int64, form models.ProductForm) (models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error)
	DeleteProduct(ctx context.Context, productID, userID int64) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ImageRemover deletes a stored product image by its stored path.
type ImageRemover interface {
	Remove(storedPath string) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProductServiceWrapper defines middleware composition for ProductService.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
