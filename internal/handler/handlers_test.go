package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
		cfg      config.Server
		wantErr  error
	}{
		{
			name:     "http address",
			services: &service.Services{},
			cfg:      config.Server{HTTPAddress: ":3000", PathPrefix: "/api"},
		},
		{
			name:     "no address",
			services: &service.Services{},
			cfg:      config.Server{},
			wantErr:  errNoHandlersAreCreated,
		},
		{
			name:    "no services",
			cfg:     config.Server{HTTPAddress: ":3000"},
			wantErr: errNoServicesProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":3000"}

	h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
