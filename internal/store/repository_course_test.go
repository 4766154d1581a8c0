package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

var courseColumns = []string{
	"course_id", "title", "description", "estimated_time", "materials_needed", "user_id",
	"created_at", "updated_at",
	"user_id", "first_name", "last_name", "email_address",
}

func newTestCourseRepo(t *testing.T) (*courseRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, NewPostgresErrorClassifier())
	return &courseRepository{db: db, logger: logger.Nop()}, mock
}

func strPtr(s string) *string { return &s }

func TestListCourses(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(listCourses)).
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow(1, "Build a Basic Bookcase", "High-end furniture", "12 hours", nil, 1, now, now, 1, "Joe", "Smith", "joe@smith.com").
			AddRow(2, "Learn How to Program", "Beginner", nil, "Notebook", 2, now, now, 2, "Sally", "Jones", "sally@jones.com"))

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, "12 hours", *courses[0].EstimatedTime)
	assert.Nil(t, courses[0].MaterialsNeeded)
	require.NotNil(t, courses[0].Owner)
	assert.Equal(t, models.UserPublic{UserID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}, *courses[0].Owner)

	assert.Nil(t, courses[1].EstimatedTime)
	assert.Equal(t, "Notebook", *courses[1].MaterialsNeeded)
	assert.Equal(t, int64(2), courses[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCourses_Empty(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT c.course_id").
		WillReturnRows(sqlmock.NewRows(courseColumns))

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestListCourses_QueryError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT c.course_id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListCourses(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListCourses_RowError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT c.course_id").
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow(1, "t", "d", nil, nil, 1, now, now, 1, "Joe", "Smith", "joe@smith.com").
			RowError(0, errors.New("broken row")))

	_, err := repo.ListCourses(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindCourseByID(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(findCourseByID)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow(3, "t", "d", nil, nil, 1, now, now, 1, "Joe", "Smith", "joe@smith.com"))

	course, err := repo.FindCourseByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)
	assert.Equal(t, "Joe", course.Owner.FirstName)
}

func TestFindCourseByID_NotFound(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT c.course_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(courseColumns))

	_, err := repo.FindCourseByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCreateCourse(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	course := models.Course{
		Title:         "New Course",
		Description:   "My course description",
		EstimatedTime: strPtr("2 hours"),
		UserID:        1,
	}

	mock.ExpectQuery("INSERT INTO courses").
		WithArgs("New Course", "My course description", "2 hours", nil, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"course_id"}).AddRow(5))

	created, err := repo.CreateCourse(context.Background(), course)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, int64(1), created.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCourse_NotNullViolation(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateCourse(context.Background(), models.Course{UserID: 1})
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestCreateCourse_UnexpectedError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateCourse(context.Background(), models.Course{UserID: 99})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateCourseIfOwner(t *testing.T) {
	const updateQuery = "UPDATE courses SET title = $1, updated_at = CURRENT_TIMESTAMP WHERE course_id = $2 AND user_id = $3"

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "owner updates",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("Updated", int64(1), int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing course",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(findCourseOwner)).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "other owner",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(findCourseOwner)).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(20))
			},
			wantErr: ErrCourseNotOwned,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WillReturnError(errors.New("deadlock"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "not null violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WillReturnError(pgError(pgerrcode.NotNullViolation))
			},
			wantErr: ErrMissingRequiredField,
		},
		{
			name: "owner lookup fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(findCourseOwner)).
					WillReturnError(errors.New("timeout"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCourseRepo(t)
			tt.setup(mock)

			err := repo.UpdateCourseIfOwner(context.Background(), 1, 10, models.CourseInput{Title: strPtr("Updated")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteCourseIfOwner(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "owner deletes",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteCourseIfOwner)).
					WithArgs(int64(1), int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "already deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteCourseIfOwner)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(findCourseOwner)).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "other owner",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteCourseIfOwner)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(findCourseOwner)).
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(11))
			},
			wantErr: ErrCourseNotOwned,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteCourseIfOwner)).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteCourseIfOwner)).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCourseRepo(t)
			tt.setup(mock)

			err := repo.DeleteCourseIfOwner(context.Background(), 1, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
