package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration input before anything is hashed.
	validator validators.Validator

	// hashCost is the bcrypt cost used at registration time. Verification
	// reads the cost from the stored hash, so changing it only affects new
	// users.
	hashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the registration fields, replaces the plaintext password with
// its bcrypt hash and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID and without the
// password) or:
//   - a *validators.ValidationError listing every invalid field.
//   - a *validators.ValidationError wrapping store.ErrEmailAlreadyExists when
//     the email address is taken.
//   - a wrapped storage error for anything else.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.EmailAddress = strings.TrimSpace(user.EmailAddress)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.EmailAddress).Msg("user registration rejected")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", user.EmailAddress).Msg("email address is already registered")
		return models.User{}, fmt.Errorf("%w: %w", validators.NewValidationError(validators.ProblemEmailAddressTaken), err)
	}
	if err != nil {
		log.Err(err).Str("email", user.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Password = ""
	return registeredUser, nil
}

// Authenticate verifies HTTP Basic credentials.
//
// The user lookup always completes before the password is compared.
//
// Returns the stored user or:
//   - ErrUserNotFound if no account uses emailAddress.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Authenticate(ctx context.Context, emailAddress, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, emailAddress)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("email", emailAddress).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = utils.CheckPassword(foundUser.Password, password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, err
	}

	return foundUser, nil
}
