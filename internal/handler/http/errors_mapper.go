package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// writeError is the error normalizer shared by every endpoint. It logs the
// failure with its operation and writes the single outward error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := normalizeError(err)

	op, _ := adapter.OperationOf(err)
	logFailure(logger.FromRequest(r), resp.Status).
		Err(err).
		Str("operation", op.Name).
		Int("status", resp.Status).
		Msg("upstream call failed")

	utils.WriteJSON(w, resp, resp.Status)
}

func logFailure(log *logger.Logger, status int) *zerolog.Event {
	if status < http.StatusInternalServerError {
		return log.Warn()
	}
	return log.Error()
}

// normalizeError maps a classified failure to the outward error body:
//
//   - upstream error: upstream status, upstream message (or the operation's
//     failure message) and the upstream body as originalError;
//   - no response: 503 with a fixed message;
//   - anything else: 500 with a fixed message, the error text is never
//     exposed.
func normalizeError(err error) models.ErrorResponse {
	var upstreamErr *adapter.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		status := upstreamErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		original := decodeErrorBody(upstreamErr.Body)

		message := upstreamMessage(original)
		if message == "" {
			message = upstreamErr.Operation.FailureMessage
		}
		if message == "" {
			message = http.StatusText(status)
		}

		return models.ErrorResponse{Message: message, OriginalError: original, Status: status}

	case errors.Is(err, adapter.ErrNoResponse):
		return models.ErrorResponse{Message: messageNoResponse, Status: http.StatusServiceUnavailable}

	default:
		return models.ErrorResponse{Message: messageLocalFailure, Status: http.StatusInternalServerError}
	}
}

// decodeErrorBody returns the upstream error body as a JSON value. Bodies
// that are not JSON are kept as a string; an empty body yields nil.
func decodeErrorBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if !json.Valid(trimmed) {
		return string(body)
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	return v
}

// upstreamMessage extracts body.message. Lists of messages are joined.
func upstreamMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}

	switch msg := obj["message"].(type) {
	case string:
		return msg
	case []any:
		parts := make([]string, 0, len(msg))
		for _, m := range msg {
			if s, ok := m.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
