package models

// UpstreamPayload is a successful response received from the upstream
// service. It is relayed to the caller as is.
type UpstreamPayload struct {
	// Status is the HTTP status code returned by the upstream service.
	Status int

	// ContentType is the upstream Content-Type header value. May be empty.
	ContentType string

	// Body holds the raw response bytes: a JSON document for regular
	// operations, image bytes for the QR code operation.
	Body []byte
}

// ErrorResponse is the single outward error body produced by the gateway
// for every failed request.
type ErrorResponse struct {
	// Message is a human-readable description of the failure. When the
	// upstream service supplied its own message, that message is used.
	Message string `json:"message"`

	// OriginalError is the upstream error body, preserved for diagnostics.
	// It is omitted when the failure did not come from an upstream response.
	OriginalError any `json:"originalError,omitempty"`

	// Status mirrors the HTTP status code of the response.
	Status int `json:"status"`
}

// QRCode is the envelope returned to callers of the generate-qr endpoint.
type QRCode struct {
	Message string `json:"message"`

	// QRCode is the base64 (standard encoding) representation of the image
	// bytes returned by the upstream service.
	QRCode string `json:"qrCode"`
}
