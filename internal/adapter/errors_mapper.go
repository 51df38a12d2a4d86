package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-api-gateway/models"
)

// classify turns the result of a single resty call into exactly one outcome.
//
// An error after the request reached the transport means nothing usable came
// back. An error before that means the request was never sent. Without an
// error a response exists and only its status decides.
func classify(desc RequestDescriptor, resp *resty.Response, err error, dispatched bool) (*models.UpstreamPayload, error) {
	op := desc.Operation

	if err != nil {
		if dispatched {
			return nil, &NoResponseError{Operation: op, Err: err}
		}
		return nil, &LocalFailureError{Operation: op, Err: err}
	}

	status := resp.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &UpstreamError{Operation: op, Status: status, Body: resp.Body()}
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType(op.Response)
	}

	return &models.UpstreamPayload{
		Status:      status,
		ContentType: contentType,
		Body:        resp.Body(),
	}, nil
}

func defaultContentType(shape ResponseShape) string {
	if shape == ShapeBinary {
		return "application/octet-stream"
	}
	return "application/json"
}
