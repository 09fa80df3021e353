package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

type productService struct {
	productRepository store.ProductRepository
	images            ImageRemover

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, images ImageRemover, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		images:            images,
		logger:            logger,
	}
}

func (p *productService) CreateProduct(ctx context.Context, userID int64, form models.ProductForm) (models.Product, error) {
	if userID == 0 {
		return models.Product{}, ErrNoUserIDForProduct
	}

	product, err := p.productRepository.CreateProduct(ctx, models.Product{
		Title:       strings.TrimSpace(form.Title),
		Price:       form.Price,
		Description: strings.TrimSpace(form.Description),
		ImagePath:   form.ImagePath,
		UserID:      userID,
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return product, nil
}

func (p *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	product, err := p.productRepository.FindProductByID(ctx, productID)
	if errors.Is(err, store.ErrProductNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("product search ended with error: %w", err)
	}

	return product, nil
}

func (p *productService) ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	products, err := p.productRepository.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("product listing ended with error: %w", err)
	}

	return products, nil
}

// DeleteProduct removes a product owned by userID and its image. A failure
// to remove the image is logged and does not fail the operation.
func (p *productService) DeleteProduct(ctx context.Context, productID, userID int64) error {
	log := logger.FromContext(ctx)

	product, err := p.productRepository.DeleteProduct(ctx, productID, userID)
	if errors.Is(err, store.ErrProductNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	if product.ImagePath != "" && p.images != nil {
		if err = p.images.Remove(product.ImagePath); err != nil {
			log.Warn().Err(err).Str("image", product.ImagePath).Msg("failed to remove product image")
		}
	}

	return nil
}
