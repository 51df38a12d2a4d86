package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultPort            = "3000"
	DefaultPathPrefix      = "/api"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultServiceName     = "api-gateway"
	DefaultLogLevel        = "debug"

	DefaultUpstreamBaseURL        = "https://apiautomakerhost.serveirc.com/api/v1"
	DefaultUpstreamRequestTimeout = 5 * time.Second
	DefaultUpstreamMaxRedirects   = 5
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Server.PathPrefix == "" {
		cfg.Server.PathPrefix = DefaultPathPrefix
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.App.ServiceName == "" {
		cfg.App.ServiceName = DefaultServiceName
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultUpstreamBaseURL
	}
	if cfg.Upstream.RequestTimeout == 0 {
		cfg.Upstream.RequestTimeout = DefaultUpstreamRequestTimeout
	}
	if cfg.Upstream.MaxRedirects == nil {
		redirects := DefaultUpstreamMaxRedirects
		cfg.Upstream.MaxRedirects = &redirects
	}
}
