package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

// logged runs a single upstream call and records its success. Failures are
// returned untouched: the HTTP layer logs and normalizes them.
func logged(ctx context.Context, fallback *logger.Logger, op adapter.Operation, call func() (*models.UpstreamPayload, error)) (*models.UpstreamPayload, error) {
	payload, err := call()
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, fallback).Info().
		Str("operation", op.Name).
		Int("status", payload.Status).
		Int("size", len(payload.Body)).
		Msg("upstream call succeeded")

	return payload, nil
}

// requestLogger returns the request-scoped logger carried by ctx, or
// fallback when ctx has none.
func requestLogger(ctx context.Context, fallback *logger.Logger) *logger.Logger {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return log
}
