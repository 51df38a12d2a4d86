// Package http implements the inbound HTTP surface of the gateway.
//
// It exposes route wiring, request handlers, and middleware. Every endpoint
// parses its request, calls the service layer and either relays the upstream
// payload or hands the failure to the shared error normalizer
// (writeError), which is the only place that decides the outward status and
// body of a failed call. Cross-cutting concerns such as request tracing,
// access logging, CORS and response compression are handled here before
// requests reach the handlers.
package http
