package adapter

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess       = "success"
	outcomeUpstreamError = "upstream_error"
	outcomeNoResponse    = "no_response"
	outcomeLocalFailure  = "local_failure"
)

var upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "gateway",
	Subsystem: "upstream",
	Name:      "request_duration_seconds",
	Help:      "Duration of upstream calls by operation and outcome.",
	Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
}, []string{"operation", "outcome"})

func outcomeLabel(err error) string {
	var upstreamErr *UpstreamError
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.As(err, &upstreamErr):
		return outcomeUpstreamError
	case errors.Is(err, ErrNoResponse):
		return outcomeNoResponse
	default:
		return outcomeLocalFailure
	}
}

func observe(op Operation, err error, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(op.Name, outcomeLabel(err)).Observe(elapsed.Seconds())
}
