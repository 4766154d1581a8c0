package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user (whose Password must already be hashed) and
	// returns it with the server-assigned UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by its login identifier.
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)
}

// CourseRepository persists courses. The mutating methods combine the
// ownership check and the mutation in a single conditional statement.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	FindCourseByID(ctx context.Context, courseID int64) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateCourseIfOwner applies the non-nil fields of input to the course
	// when it is owned by ownerID. It returns ErrCourseNotFound or
	// ErrCourseNotOwned without mutating anything otherwise.
	UpdateCourseIfOwner(ctx context.Context, courseID, ownerID int64, input models.CourseInput) error

	// DeleteCourseIfOwner deletes the course when it is owned by ownerID,
	// with the same failure semantics as UpdateCourseIfOwner.
	DeleteCourseIfOwner(ctx context.Context, courseID, ownerID int64) error
}

// ErrorClassificator maps driver-specific errors onto the constraint
// classes the repositories react to.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
