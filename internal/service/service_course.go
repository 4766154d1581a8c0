package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
)

type courseService struct {
	courseRepository store.CourseRepository
	logger           *logger.Logger
}

// NewCourseService returns a CourseService that performs no input
// validation of its own; wrap it with NewCourseValidationService.
func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return models.Course{}, fmt.Errorf("error getting course %d: %w", courseID, err)
	}
	return course, nil
}

// CreateCourse stores input as a new course owned by owner. Ownership is
// never taken from the input.
func (s *courseService) CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	log := logger.FromContext(ctx)

	course, err := s.courseRepository.CreateCourse(ctx, input.ToCourse(owner.UserID))
	if err != nil {
		return models.Course{}, fmt.Errorf("error creating course: %w", err)
	}

	log.Info().Int64("course_id", course.ID).Int64("user_id", owner.UserID).Msg("course created")
	return course, nil
}

// UpdateCourse applies input to the course if owner owns it.
func (s *courseService) UpdateCourse(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error {
	log := logger.FromContext(ctx)

	if err := s.courseRepository.UpdateCourseIfOwner(ctx, courseID, owner.UserID, input); err != nil {
		return fmt.Errorf("error updating course %d: %w", courseID, err)
	}

	log.Info().Int64("course_id", courseID).Int64("user_id", owner.UserID).Msg("course updated")
	return nil
}

// DeleteCourse removes the course if owner owns it.
func (s *courseService) DeleteCourse(ctx context.Context, owner models.User, courseID int64) error {
	log := logger.FromContext(ctx)

	if err := s.courseRepository.DeleteCourseIfOwner(ctx, courseID, owner.UserID); err != nil {
		return fmt.Errorf("error deleting course %d: %w", courseID, err)
	}

	log.Info().Int64("course_id", courseID).Int64("user_id", owner.UserID).Msg("course deleted")
	return nil
}
