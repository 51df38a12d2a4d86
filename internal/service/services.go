package service

import (
	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

type Services struct {
	AppInfoService   AppInfoService
	HealthService    HealthService
	UserService      UserService
	AuthService      AuthService
	TwoFactorService TwoFactorService
}

func NewServices(upstream adapter.UpstreamAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AppInfoService:   NewAppInfoService(buildInfo, logger),
		HealthService:    NewHealthService(upstream, logger),
		UserService:      NewUserService(upstream, logger),
		AuthService:      NewAuthService(upstream, logger),
		TwoFactorService: NewTwoFactorService(upstream, logger),
	}
}
