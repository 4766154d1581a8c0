package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-courses-api/models"
)

// Field name constants used to scope course validation.
const (
	// FieldTitle requires a non-blank title.
	FieldTitle = "title"

	// FieldDescription requires a non-blank description.
	FieldDescription = "description"

	// FieldOwner requires a positive owner identifier on a models.Course.
	FieldOwner = "user_id"

	// FieldCourseUpdate applies the partial-update rules to a
	// models.CourseInput: at least one field must be supplied, and a supplied
	// title or description must not be blank.
	FieldCourseUpdate = "course update"
)

// CourseValidator validates models.CourseInput and models.Course values.
type CourseValidator struct {
}

// NewCourseValidator constructs a new CourseValidator
// and returns it as the Validator interface.
func NewCourseValidator() Validator {
	return &CourseValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Default fields: FieldTitle and FieldDescription for a CourseInput (the
// creation rules); FieldTitle, FieldDescription and FieldOwner for a Course.
func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourseInput:
		return v.validateInput(value, fields...)
	case *models.CourseInput:
		return v.validateInput(*value, fields...)

	case models.Course:
		return v.validateCourse(value, fields...)
	case *models.Course:
		return v.validateCourse(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CourseValidator) validateInput(in models.CourseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(in.Title) {
				verr.add(ProblemTitleRequired)
			}
		case FieldDescription:
			if isBlank(in.Description) {
				verr.add(ProblemDescriptionRequired)
			}
		case FieldCourseUpdate:
			if in.IsEmpty() {
				verr.add(ProblemNothingToUpdate)
				continue
			}
			if in.Title != nil && isBlank(in.Title) {
				verr.add(ProblemTitleRequired)
			}
			if in.Description != nil && isBlank(in.Description) {
				verr.add(ProblemDescriptionRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *CourseValidator) validateCourse(c models.Course, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldOwner}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(c.Title) == "" {
				verr.add(ProblemTitleRequired)
			}
		case FieldDescription:
			if strings.TrimSpace(c.Description) == "" {
				verr.add(ProblemDescriptionRequired)
			}
		case FieldOwner:
			if c.UserID <= 0 {
				verr.add(ProblemOwnerRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
