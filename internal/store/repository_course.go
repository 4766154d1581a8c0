package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by db.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (models.Course, error) {
	var (
		course models.Course
		owner  models.UserPublic
	)

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&owner.UserID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.Owner = &owner
	return course, nil
}

func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCourses)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error querying courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating courses")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

func (r *courseRepository) FindCourseByID(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	course, err := scanCourse(r.db.QueryRowContext(ctx, findCourseByID, courseID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Int64("course_id", courseID).Msg("error scanning course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCourse,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.UserID,
	)

	err := row.Scan(&course.ID)
	if err == nil {
		return course, nil
	}

	log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
	if r.db.classify(err) == NotNullViolation {
		return models.Course{}, ErrMissingRequiredField
	}
	return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *courseRepository) UpdateCourseIfOwner(ctx context.Context, courseID, ownerID int64, input models.CourseInput) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(courseID, ownerID, input)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourseIfOwner").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourseIfOwner").Msg("error updating course")
		if r.db.classify(err) == NotNullViolation {
			return ErrMissingRequiredField
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkMutated(ctx, result, courseID, ownerID)
}

func (r *courseRepository) DeleteCourseIfOwner(ctx context.Context, courseID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCourseIfOwner, courseID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourseIfOwner").Msg("error deleting course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkMutated(ctx, result, courseID, ownerID)
}

// checkMutated returns nil when the conditional statement touched a row.
// Otherwise it looks up the current owner to tell a missing course from
// one owned by somebody else.
func (r *courseRepository) checkMutated(ctx context.Context, result sql.Result, courseID, ownerID int64) error {
	log := logger.FromContext(ctx)

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	var actualOwner int64
	err = r.db.QueryRowContext(ctx, findCourseOwner, courseID).Scan(&actualOwner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrCourseNotFound
	case err != nil:
		log.Err(err).Str("func", "*courseRepository.checkMutated").Msg("error looking up course owner")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	case actualOwner != ownerID:
		log.Warn().Str("func", "*courseRepository.checkMutated").
			Int64("course_id", courseID).
			Int64("owner_id", actualOwner).
			Int64("user_id", ownerID).
			Msg("course is owned by another user")
		return ErrCourseNotOwned
	default:
		// the row appeared after the conditional statement ran
		return ErrCourseNotFound
	}
}
