package service

import (
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	courseService := NewCourseValidationService().Wrap(
		NewCourseService(storages.CourseRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CourseService:  courseService,
		AppInfoService: appInfoService,
	}, nil
}
