package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient].
type HTTPClientOptions struct {
	// Timeout bounds a whole call, redirects and body read included.
	// Zero means no timeout.
	Timeout time.Duration

	// MaxRedirects is the number of redirects followed; one more fails the
	// call.
	MaxRedirects int

	// Transport replaces the default round tripper when set.
	Transport http.RoundTripper

	// Logger receives resty's own warnings and errors. Optional.
	Logger *logger.Logger
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries stay disabled.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 5 * time.Second, MaxRedirects: 5})
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(opts.MaxRedirects + 1))

	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}
	if opts.Logger != nil {
		client.SetLogger(restyLogger{log: opts.Logger})
	}

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
