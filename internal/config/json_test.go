package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeFile(t, `{
		"app": {
			"service_name": "edge",
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"path_prefix": "/gw",
			"shutdown_timeout": "15s"
		},
		"upstream": {
			"base_url": "http://upstream.local/api/v1",
			"request_timeout": "2s",
			"max_redirects": 0
		},
		"port": "8081"
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "edge", cfg.App.ServiceName)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/gw", cfg.Server.PathPrefix)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://upstream.local/api/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.RequestTimeout)
	require.NotNil(t, cfg.Upstream.MaxRedirects)
	assert.Equal(t, 0, *cfg.Upstream.MaxRedirects)

	assert.Equal(t, "8081", cfg.Port)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialFile(t *testing.T) {
	p := writeFile(t, `{"upstream": {"base_url": "http://upstream.local"}}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "http://upstream.local", cfg.Upstream.BaseURL)
	assert.Nil(t, cfg.Upstream.MaxRedirects)
	assert.Zero(t, cfg.Upstream.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := writeFile(t, `{"upstream": {"request_timeout": 1500000000}}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Upstream.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	p := writeFile(t, `{"server": {`)

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unparsable string", body: `{"upstream": {"request_timeout": "soon"}}`},
		{name: "boolean", body: `{"server": {"shutdown_timeout": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
