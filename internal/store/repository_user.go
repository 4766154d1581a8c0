package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique violation on email_address → [ErrEmailAlreadyExists].
//   - not-null violation → [ErrMissingRequiredField].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.EmailAddress, user.Password)

	err := row.Scan(&user.UserID)
	if err == nil {
		return user, nil
	}

	log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
	switch r.db.classify(err) {
	case UniqueViolation:
		return models.User{}, ErrEmailAlreadyExists
	case NotNullViolation:
		return models.User{}, ErrMissingRequiredField
	default:
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// FindUserByEmail retrieves the user whose email address equals emailAddress.
// [sql.ErrNoRows] is reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, emailAddress)

	err := row.Scan(
		&foundUser.UserID,
		&foundUser.FirstName,
		&foundUser.LastName,
		&foundUser.EmailAddress,
		&foundUser.Password,
		&foundUser.CreatedAt,
		&foundUser.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
