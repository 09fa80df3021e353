package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/mock"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo store.UserRepository) *authService {
	return &authService{
		userRepository: repo,
		cost:           bcrypt.MinCost,
		logger:         logger.Nop(),
	}
}

func TestAuthService_Signup(t *testing.T) {
	form := models.SignupForm{Name: " Ann ", Email: " Ann@Example.com", Password: "secret", ConfirmPassword: "secret"}

	t.Run("hashes password and normalizes input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "Ann", u.Name)
				assert.Equal(t, "ann@example.com", u.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
				u.UserID = 1
				return u, nil
			})

		user, err := newTestAuthService(repo).Signup(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := newTestAuthService(repo).Signup(context.Background(), form)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

		_, err := newTestAuthService(repo).Signup(context.Background(), form)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 3, Email: "ann@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		form     models.LoginForm
		repoUser models.User
		repoErr  error
		wantErr  error
	}{
		{name: "valid", form: models.LoginForm{Email: "ANN@example.com", Password: "secret"}, repoUser: stored},
		{name: "wrong password", form: models.LoginForm{Email: "ann@example.com", Password: "nope"}, repoUser: stored, wantErr: ErrInvalidCredentials},
		{name: "unknown email", form: models.LoginForm{Email: "bob@example.com", Password: "secret"}, repoErr: store.ErrNoUserWasFound, wantErr: ErrInvalidCredentials},
		{name: "storage failure", form: models.LoginForm{Email: "ann@example.com", Password: "secret"}, repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			repo.EXPECT().FindUserByEmail(gomock.Any(), normalizeEmail(tt.form.Email)).Return(tt.repoUser, tt.repoErr)

			user, err := newTestAuthService(repo).Login(context.Background(), tt.form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.UserID, user.UserID)
		})
	}
}

func TestAuthValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Signup(context.Background(), models.SignupForm{Name: "Ann", Email: "bad", Password: "secret", ConfirmPassword: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.LoginForm{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	want := models.User{UserID: 5}
	inner.EXPECT().Login(gomock.Any(), gomock.Any()).Return(want, nil)
	got, err := svc.Login(context.Background(), models.LoginForm{Email: "ann@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	innerErr := errors.New("inner")
	inner.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{}, innerErr)
	_, err = svc.Signup(context.Background(), models.SignupForm{Name: "Ann", Email: "ann@example.com", Password: "secret", ConfirmPassword: "secret"})
	assert.ErrorIs(t, err, innerErr)
}
