package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// ---- Service mocks ----

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	authenticateFn func(ctx context.Context, emailAddress, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, emailAddress, password string) (models.User, error) {
	return m.authenticateFn(ctx, emailAddress, password)
}

type mockCourseService struct {
	listCoursesFn  func(ctx context.Context) ([]models.Course, error)
	getCourseFn    func(ctx context.Context, courseID int64) (models.Course, error)
	createCourseFn func(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error)
	updateCourseFn func(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error
	deleteCourseFn func(ctx context.Context, owner models.User, courseID int64) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	return m.getCourseFn(ctx, courseID)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	return m.createCourseFn(ctx, owner, input)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error {
	return m.updateCourseFn(ctx, owner, courseID, input)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, owner models.User, courseID int64) error {
	return m.deleteCourseFn(ctx, owner, courseID)
}

type mockAppInfoService struct {
	version models.AppVersion
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppVersion {
	return m.version
}

// ---- Helpers ----

func newTestHandler() *Handler {
	return &Handler{
		services: &service.Services{},
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger.Nop(),
	}
}

func newHandlerWithServices(services *service.Services) *Handler {
	h := newTestHandler()
	h.services = services
	return h
}

// injectNopLogger puts a nop logger into the request context the same way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withAuthenticatedUser emulates a request that already passed the auth
// middleware.
func withAuthenticatedUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}
