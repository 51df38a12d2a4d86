package service

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

type healthService struct {
	upstream adapter.UpstreamAdapter

	logger *logger.Logger
}

func NewHealthService(upstream adapter.UpstreamAdapter, logger *logger.Logger) HealthService {
	return &healthService{upstream: upstream, logger: logger}
}

// Check asks the upstream for its own health report.
func (h *healthService) Check(ctx context.Context) (*models.UpstreamPayload, error) {
	return logged(ctx, h.logger, adapter.OpHealth, func() (*models.UpstreamPayload, error) {
		return h.upstream.Health(ctx)
	})
}
