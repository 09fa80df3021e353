package service

import (
	"fmt"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

type Services struct {
	IdentityService IdentityService
	AuthService     AuthService
	ProductService  ProductService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, images ImageRemover, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		IdentityService: NewIdentityService(storages.UserRepository, logger),
		AuthService:     NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, logger)),
		ProductService:  NewProductValidationService().Wrap(NewProductService(storages.ProductRepository, images, logger)),
		AppInfoService:  appInfo,
	}, nil
}
