package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a path prefix without the leading slash).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates invalid upstream settings
	// (for example, a relative base URL or a non-positive timeout).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
)
