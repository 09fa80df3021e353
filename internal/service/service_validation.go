package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/MKhiriev/go-shop/models"
)

// AuthValidationService validates signup and login forms before passing
// them to the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewFormValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, form)
}

func (v *AuthValidationService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, form)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ProductValidationService validates product forms before passing them to
// the wrapped ProductService. Read and delete calls pass through.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewFormValidator(),
	}
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, userID int64, form models.ProductForm) (models.Product, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProduct(ctx, userID, form)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return v.inner.GetProduct(ctx, productID)
}

func (v *ProductValidationService) ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	return v.inner.ListProducts(ctx, filter)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, productID, userID int64) error {
	return v.inner.DeleteProduct(ctx, productID, userID)
}

func (v *ProductValidationService) Wrap(inner ProductService) ProductService {
	v.inner = inner
	return v
}
