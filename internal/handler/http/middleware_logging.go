package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
)

// withLogging writes one access log line per request. The caller's token is
// never logged; its unverified subject is, when there is one.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)

		if authHeader := authorization(r); authHeader != "" {
			if sub, err := utils.TokenSubject(authHeader); err == nil {
				event = event.Str("subject", sub)
			}
		}

		event.Send()
	})
}
