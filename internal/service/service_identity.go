package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
)

type identityService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewIdentityService(userRepository store.UserRepository, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *identityService) ResolveUser(ctx context.Context, userID int64) (models.User, bool, error) {
	if userID == 0 {
		return models.User{}, false, nil
	}

	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Int64("user_id", userID).Msg("session references a missing user, continuing as anonymous")
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrIdentityResolution, err)
	}

	return user, true, nil
}
