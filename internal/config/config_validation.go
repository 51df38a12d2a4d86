// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if !strings.HasPrefix(cfg.Server.PathPrefix, "/") {
		return fmt.Errorf("%w: path prefix %q must start with '/'", ErrInvalidServerConfigs, cfg.Server.PathPrefix)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url: %w", ErrInvalidUpstreamConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be an absolute http(s) address", ErrInvalidUpstreamConfigs, cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidUpstreamConfigs)
	}
	if cfg.Upstream.MaxRedirects != nil && *cfg.Upstream.MaxRedirects < 0 {
		return fmt.Errorf("%w: max redirects must not be negative", ErrInvalidUpstreamConfigs)
	}

	return nil
}
