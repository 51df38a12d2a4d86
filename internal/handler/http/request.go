package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

const maxBodySize = 1 << 20

// authorization returns the caller's Authorization header value as received.
func authorization(r *http.Request) string {
	return r.Header.Get("Authorization")
}

// decodeBody reads the request body into v. An empty body is read as {}.
// Anything but a single JSON object is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	if data[0] != '{' {
		return ErrInvalidJSONBody
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if dec.More() {
		return ErrInvalidJSONBody
	}

	return nil
}

// readBody decodes the request body into v and answers 400 or 413 itself
// when it cannot. It reports whether the handler may continue.
func readBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := decodeBody(w, r, v)
	if err == nil {
		return true
	}

	logger.FromRequest(r).Err(err).Msg("invalid request body")

	status, message := http.StatusBadRequest, ErrInvalidJSONBody.Error()
	if errors.Is(err, ErrBodyTooLarge) {
		status, message = http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error()
	}
	utils.WriteJSON(w, models.ErrorResponse{Message: message, Status: status}, status)
	return false
}

// relay writes a successful upstream payload to the caller unchanged.
func relay(w http.ResponseWriter, r *http.Request, payload *models.UpstreamPayload) {
	if _, err := utils.WriteRaw(w, payload.ContentType, payload.Body, payload.Status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing upstream payload failed")
	}
}
