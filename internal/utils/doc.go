// Package utils provides general-purpose helpers used across the gateway:
// JSON and raw HTTP response writers, the resty-based outbound HTTP client,
// bearer token inspection for log fields, and trace id generation.
package utils
