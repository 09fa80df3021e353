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
)

func TestIdentityService_ResolveUser(t *testing.T) {
	dbErr := errors.New("connection refused")
	stored := models.User{UserID: 7, Name: "Ann", Email: "ann@example.com"}

	tests := []struct {
		name      string
		userID    int64
		setup     func(repo *mock.MockUserRepository)
		wantUser  models.User
		wantFound bool
		wantErr   error
	}{
		{
			name:   "no reference performs no lookup",
			userID: 0,
			setup:  func(repo *mock.MockUserRepository) {},
		},
		{
			name:   "existing user",
			userID: 7,
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(stored, nil)
			},
			wantUser:  stored,
			wantFound: true,
		},
		{
			name:   "stale reference degrades to anonymous",
			userID: 9,
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).
					Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name:   "lookup failure",
			userID: 7,
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).
					Return(models.User{}, dbErr)
			},
			wantErr: ErrIdentityResolution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			tt.setup(repo)

			svc := NewIdentityService(repo, logger.Nop())
			user, found, err := svc.ResolveUser(context.Background(), tt.userID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, dbErr)
				assert.False(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}
