package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-courses-api/models"
)

// Placeholders are written as $n. PostgreSQL requires it, SQLite accepts it
// as long as the numbers appear in ascending order.
const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email_address, password, created_at, updated_at
    FROM users
    WHERE email_address = $1;`

	selectCourses = `SELECT c.course_id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
        c.created_at, c.updated_at,
        u.user_id, u.first_name, u.last_name, u.email_address
    FROM courses c
    JOIN users u ON u.user_id = c.user_id`

	listCourses = selectCourses + `
    ORDER BY c.course_id;`

	findCourseByID = selectCourses + `
    WHERE c.course_id = $1;`

	createCourse = `INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING course_id;`

	deleteCourseIfOwner = `DELETE FROM courses
    WHERE course_id = $1 AND user_id = $2;`

	findCourseOwner = `SELECT user_id FROM courses WHERE course_id = $1;`
)

// buildUpdateCourseQuery builds the conditional UPDATE for the non-nil fields
// of input. The row is touched only when both the id and the owner match.
func buildUpdateCourseQuery(courseID, ownerID int64, input models.CourseInput) (string, []any, error) {
	builder := sq.Update("courses").PlaceholderFormat(sq.Dollar)

	if input.Title != nil {
		builder = builder.Set("title", *input.Title)
	}
	if input.Description != nil {
		builder = builder.Set("description", *input.Description)
	}
	if input.EstimatedTime != nil {
		builder = builder.Set("estimated_time", *input.EstimatedTime)
	}
	if input.MaterialsNeeded != nil {
		builder = builder.Set("materials_needed", *input.MaterialsNeeded)
	}

	return builder.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"course_id": courseID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}
