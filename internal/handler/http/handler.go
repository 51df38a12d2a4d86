package http

import (
	"strings"

	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	// pathPrefix is mounted in front of every gateway route. Empty means the
	// routes live at the root.
	pathPrefix string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("prefix", cfg.PathPrefix).Msg("http handler created")
	return &Handler{
		services:   services,
		pathPrefix: strings.TrimRight(cfg.PathPrefix, "/"),
		logger:     logger,
	}
}
