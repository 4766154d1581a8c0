package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/mock"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

func newTestAuthService(ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop())
	return svc, repo
}

func validUser() models.User {
	return models.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_HashesPasswordBeforePersisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "joepassword", u.Password)
			assert.NoError(t, utils.CheckPassword(u.Password, "joepassword"))

			cost, err := bcrypt.Cost([]byte(u.Password))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)

			u.UserID = 1
			return u, nil
		},
	)

	created, err := svc.RegisterUser(ctx, validUser())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Empty(t, created.Password, "password hash must not leave the service")
}

func TestRegisterUser_TrimsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "joe@smith.com", u.EmailAddress)
			return u, nil
		},
	)

	user := validUser()
	user.EmailAddress = "  joe@smith.com "
	_, err := svc.RegisterUser(context.Background(), user)
	require.NoError(t, err)
}

func TestRegisterUser_ValidationError_NoStoreCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{EmailAddress: "not-an-email"})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		validators.ProblemFirstNameRequired,
		validators.ProblemLastNameRequired,
		validators.ProblemEmailAddressInvalid,
		validators.ProblemPasswordRequired,
	}, verr.Problems)
}

func TestRegisterUser_PasswordLongerThanBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(ctrl)

	user := validUser()
	user.Password = strings.Repeat("x", validators.MaxPasswordBytes+1)

	_, err := svc.RegisterUser(context.Background(), user)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validators.ProblemPasswordTooLong}, verr.Problems)
	assert.NotErrorIs(t, err, bcrypt.ErrPasswordTooLong, "rejected before hashing")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), validUser())

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validators.ProblemEmailAddressTaken}, verr.Problems)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, validators.ErrValidationFailed)
}

func TestRegisterUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

	_, err := svc.RegisterUser(context.Background(), validUser())
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.NotErrorIs(t, err, validators.ErrValidationFailed)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)
	ctx := context.Background()

	stored := validUser()
	stored.UserID = 3
	stored.Password = mustHash(t, "joepassword")
	repo.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(stored, nil)

	user, err := svc.Authenticate(ctx, "joe@smith.com", "joepassword")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	stored := validUser()
	stored.Password = mustHash(t, "joepassword")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "joe@smith.com").Return(stored, nil)

	_, err := svc.Authenticate(context.Background(), "joe@smith.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthenticate_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	dbErr := errors.New("connection refused")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Authenticate(context.Background(), "joe@smith.com", "joepassword")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthenticate_CorruptHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(ctrl)

	stored := validUser()
	stored.Password = "plaintext"
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)

	_, err := svc.Authenticate(context.Background(), "joe@smith.com", "plaintext")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}
