package service

import (
	"context"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

type appInfoService struct {
	info models.AppVersion

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set and the linker-provided
// build version otherwise. One of them must be non-empty.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppVersion{
			Version:     version,
			BuildDate:   buildInfo.BuildDate(),
			BuildCommit: buildInfo.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppVersion {
	return s.info
}
