package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Queries are built with squirrel.
type productRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	product.CreatedAt = p.now().UTC()
	query, args, err := buildCreateProductQuery(product.Title, product.Price, product.Description, product.ImagePath, product.UserID, product.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "productRepository.CreateProduct").Msg("failed to create query")
		return models.Product{}, err
	}

	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&product.ProductID); err != nil {
		log.Err(err).
			Str("func", "productRepository.CreateProduct").
			Int64("user_id", product.UserID).
			Msg("failed to insert product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

func (p *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProductQuery(productID)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	err = scanProduct(p.DB.QueryRowContext(ctx, query, args...), &product)
	switch {
	case err == nil:
		return product, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrProductNotFound
	default:
		log.Err(err).Str("func", "productRepository.FindProductByID").Int64("product_id", productID).Msg("failed to find product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (p *productRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "productRepository.ListProducts").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.ListProducts").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err = scanProduct(rows, &product); err != nil {
			log.Err(err).Str("func", "productRepository.ListProducts").Int("index", len(products)).Msg("failed to scan product")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "productRepository.ListProducts").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

func (p *productRepository) DeleteProduct(ctx context.Context, productID, userID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(productID, userID)
	if err != nil {
		return models.Product{}, err
	}

	var deleted models.Product
	err = scanProduct(p.DB.QueryRowContext(ctx, query, args...), &deleted)
	switch {
	case err == nil:
		return deleted, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrProductNotFound
	default:
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Int64("product_id", productID).
			Int64("user_id", userID).
			Msg("failed to delete product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *models.Product) error {
	return row.Scan(
		&product.ProductID,
		&product.Title,
		&product.Price,
		&product.Description,
		&product.ImagePath,
		&product.UserID,
		&product.CreatedAt,
	)
}
