package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductRepo(t *testing.T, now time.Time) (*productRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &productRepository{DB: db, logger: logger.Nop(), now: func() time.Time { return now }}, mock
}

func TestCreateProduct_Success(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo, mock := newTestProductRepo(t, now)

	product := models.Product{Title: "Book", Price: 1999, Description: "d", ImagePath: "images/a.png", UserID: 5}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Book", int64(1999), "d", "images/a.png", int64(5), now).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(11))

	created, err := repo.CreateProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ProductID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_DBError(t *testing.T) {
	repo, mock := newTestProductRepo(t, time.Now())

	mock.ExpectQuery("INSERT INTO products").WillReturnError(errors.New("boom"))

	_, err := repo.CreateProduct(context.Background(), models.Product{Title: "Book"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindProductByID(t *testing.T) {
	repo, mock := newTestProductRepo(t, time.Now())
	created := time.Now()

	mock.ExpectQuery("SELECT product_id, title").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(3, "Pen", 150, "", "images/p.png", 1, created))

	got, err := repo.FindProductByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Title)
	assert.Equal(t, "1.50", got.DisplayPrice())

	mock.ExpectQuery("SELECT product_id, title").
		WithArgs(int64(4)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindProductByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	tests := []struct {
		name    string
		filter  ProductFilter
		setup   func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr error
	}{
		{
			name:   "all products",
			filter: ProductFilter{},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT product_id, title.* FROM products ORDER BY").
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(2, "B", 200, "", "images/b.png", 1, time.Now()).
						AddRow(1, "A", 100, "", "images/a.png", 1, time.Now()))
			},
			wantLen: 2,
		},
		{
			name:   "by owner",
			filter: ProductFilter{UserID: 9},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("WHERE user_id = \\$1").
					WithArgs(int64(9)).
					WillReturnRows(sqlmock.NewRows(productColumns))
			},
			wantLen: 0,
		},
		{
			name:   "query error",
			filter: ProductFilter{},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT product_id").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name:   "scan error",
			filter: ProductFilter{},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT product_id").
					WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(1))
			},
			wantErr: ErrScanningRows,
		},
		{
			name:   "iteration error",
			filter: ProductFilter{},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT product_id").
					WillReturnRows(sqlmock.NewRows(productColumns).
						AddRow(1, "A", 100, "", "images/a.png", 1, time.Now()).
						RowError(0, errors.New("row error")))
			},
			wantErr: ErrScanningRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProductRepo(t, time.Now())
			tt.setup(mock)

			got, err := repo.ListProducts(context.Background(), tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NotNil(t, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	repo, mock := newTestProductRepo(t, time.Now())

	mock.ExpectQuery("DELETE FROM products WHERE product_id = \\$1 AND user_id = \\$2 RETURNING").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(3, "Pen", 150, "", "images/p.png", 1, time.Now()))

	deleted, err := repo.DeleteProduct(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "images/p.png", deleted.ImagePath)

	mock.ExpectQuery("DELETE FROM products").
		WithArgs(int64(3), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.DeleteProduct(context.Background(), 3, 2)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
