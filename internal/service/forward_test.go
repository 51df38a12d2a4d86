package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/mock"
	"github.com/MKhiriev/go-api-gateway/models"
)

func bufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestLogged_UsesInjectedLoggerWithoutRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	_, err := logged(context.Background(), bufferedLogger(&buf), adapter.OpHealth, func() (*models.UpstreamPayload, error) {
		return &models.UpstreamPayload{Status: 200, Body: []byte("{}")}, nil
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"operation":"health"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestLogged_PrefersRequestLogger(t *testing.T) {
	var injected, scoped bytes.Buffer
	scopedLogger := zerolog.New(&scoped)
	ctx := scopedLogger.WithContext(context.Background())

	_, err := logged(ctx, bufferedLogger(&injected), adapter.OpListUsers, func() (*models.UpstreamPayload, error) {
		return &models.UpstreamPayload{Status: 200}, nil
	})

	require.NoError(t, err)
	assert.Contains(t, scoped.String(), `"operation":"listUsers"`)
	assert.Empty(t, injected.String())
}

func TestLogged_FailureIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	want := &adapter.UpstreamError{Operation: adapter.OpGetUser, Status: 404}

	payload, err := logged(context.Background(), bufferedLogger(&buf), adapter.OpGetUser, func() (*models.UpstreamPayload, error) {
		return nil, want
	})

	assert.Nil(t, payload)
	assert.Same(t, want, err)
	assert.Empty(t, buf.String())
}

func TestUserService_LogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	upstream := mock.NewMockUpstreamAdapter(gomock.NewController(t))
	upstream.EXPECT().DeleteUser(gomock.Any(), "Bearer T", "9").
		Return(&models.UpstreamPayload{Status: 204}, nil)

	svc := NewUserService(upstream, bufferedLogger(&buf))
	_, err := svc.Delete(context.Background(), "Bearer T", "9")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"operation":"deleteUser"`)
}

func TestAppInfoService_LogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAppInfoService(models.NewAppBuildInfo("gw", "2.0.0", "", ""), bufferedLogger(&buf))

	svc.GetBuildInfo(context.Background())

	assert.Contains(t, buf.String(), `"version":"2.0.0"`)
}

func TestRequestLogger_NilFallback(t *testing.T) {
	log := requestLogger(context.Background(), nil)

	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
