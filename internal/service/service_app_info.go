package service

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	requestLogger(ctx, s.logger).Debug().
		Str("version", s.buildInfo.BuildVersion()).
		Msg("build info requested")

	return s.buildInfo
}
