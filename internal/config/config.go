// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// gateway. It aggregates all sub-configurations and is populated by merging
// values from a JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds the inbound listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the address and call limits of the single upstream
	// service every request is forwarded to.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Port is the listening port used when Server.HTTPAddress is not set.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ServiceName is reported in logs and on the root endpoint.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000"). Takes precedence over Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PathPrefix is the global prefix every gateway route is mounted under
	// (e.g. "/api").
	// Env: SERVER_PATH_PREFIX
	PathPrefix string `env:"PATH_PREFIX"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Upstream holds the immutable settings of the forwarding core.
type Upstream struct {
	// BaseURL is the absolute base address of the upstream API
	// (e.g. "https://upstream.example.com/api/v1").
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single upstream call. Exceeding it is reported
	// as "no response".
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRedirects is the number of redirects followed per call. Nil means
	// the default; zero disables redirects.
	// Env: UPSTREAM_MAX_REDIRECTS
	MaxRedirects *int `env:"MAX_REDIRECTS"`
}

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from all available sources in the following priority order
// (higher wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing values are then filled with defaults. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
