// Package server wires and runs the gateway's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
