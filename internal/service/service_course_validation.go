package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

type CourseValidationService struct {
	inner     CourseService
	validator validators.Validator
}

func NewCourseValidationService() CourseServiceWrapper {
	return &CourseValidationService{
		validator: validators.NewCourseValidator(),
	}
}

func (v *CourseValidationService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return v.inner.ListCourses(ctx)
}

func (v *CourseValidationService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	return v.inner.GetCourse(ctx, courseID)
}

func (v *CourseValidationService) CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	// course in json should consist of:
	//  - Title
	//  - Description
	//  - (not always) EstimatedTime
	//  - (not always) MaterialsNeeded
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Course{}, err
	}
	// the owner always comes from the authenticated user
	if err := v.validator.Validate(ctx, input.ToCourse(owner.UserID), validators.FieldOwner); err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateCourse(ctx, owner, input)
}

func (v *CourseValidationService) UpdateCourse(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error {
	if err := v.validator.Validate(ctx, input, validators.FieldCourseUpdate); err != nil {
		return err
	}
	if owner.UserID <= 0 {
		return fmt.Errorf("%w: no owner for course", ErrInvalidDataProvided)
	}

	return v.inner.UpdateCourse(ctx, owner, courseID, input)
}

func (v *CourseValidationService) DeleteCourse(ctx context.Context, owner models.User, courseID int64) error {
	if owner.UserID <= 0 {
		return fmt.Errorf("%w: no owner for course", ErrInvalidDataProvided)
	}

	return v.inner.DeleteCourse(ctx, owner, courseID)
}

func (v *CourseValidationService) Wrap(wrapper CourseService) CourseService {
	v.inner = wrapper
	return v
}
