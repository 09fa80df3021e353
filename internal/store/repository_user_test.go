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
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"user_id", "name", "email", "password_hash", "is_admin", "created_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash"}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, false).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, user.Name, user.Email, user.PasswordHash, false, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEmailAlreadyExists},
		{name: "network error", dbErr: errors.New("db network error"), wantMsg: "unexpected DB error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1)) // wrong shape → scan error

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.User
		wantErr error
		anyErr  bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id, name, email").
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "Ann", "ann@example.com", "h", true, now))
			},
			want: models.User{UserID: 7, Name: "Ann", Email: "ann@example.com", PasswordHash: "h", IsAdmin: true, CreatedAt: now},
		},
		{
			name: "no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id, name, email").
					WithArgs(int64(7)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "no data found code",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id, name, email").
					WithArgs(int64(7)).
					WillReturnError(pgError(pgerrcode.NoDataFound))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "connection lost",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id, name, email").
					WithArgs(int64(7)).
					WillReturnError(errors.New("connection reset by peer"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			got, err := repo.FindUserByID(context.Background(), 7)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNoUserWasFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("WHERE email = ").
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "Ann", "ann@example.com", "h", false, time.Now()))

	got, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)

	mock.ExpectQuery("WHERE email = ").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_RetriesTransientErrors(t *testing.T) {
	now := time.Now()
	repo, mock := newTestUserRepo(t)
	repo.retry = retryPolicy{attempts: 3, delay: time.Millisecond}

	mock.ExpectQuery("SELECT user_id, name, email").
		WithArgs(int64(7)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT user_id, name, email").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "Ann", "ann@example.com", "h", false, now))

	got, err := repo.FindUserByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
