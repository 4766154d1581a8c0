package service

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Authenticate resolves the user identified by emailAddress and checks
	// password against the stored hash.
	Authenticate(ctx context.Context, emailAddress, password string) (models.User, error)
}

// CourseService exposes course reads to everybody and mutations to the
// authenticated owner.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error)
	UpdateCourse(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error
	DeleteCourse(ctx context.Context, owner models.User, courseID int64) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppVersion
}

// CourseServiceWrapper defines middleware composition for CourseService.
// Implementations wrap an existing CourseService to add behavior such as
// logging or validating.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService // returns a decorated CourseService applying additional behavior
}
