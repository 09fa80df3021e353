package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// cost is the bcrypt work factor used for new hashes.
	cost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository. The service holds no mutable state and is safe for
// concurrent use.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		cost:           bcrypt.DefaultCost,
		logger:         logger,
	}
}

// Signup creates a new account from a validated form.
//
// Returns the persisted user or:
//   - ErrEmailTaken if another account uses the email.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(form.Name),
		Email:        normalizeEmail(form.Email),
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", form.Email).Msg("signup with taken email")
		return models.User{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login checks the email and password of an existing account.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(form.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		log.Debug().Int64("id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
