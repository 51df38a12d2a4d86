// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading inbound request bodies. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidJSONBody is returned when the body is not a single JSON
	// object.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrBodyTooLarge is returned when the body exceeds maxBodySize.
	ErrBodyTooLarge = errors.New("request body too large")
)

// Fixed outward messages for failures that carry no upstream body.
const (
	messageNoResponse   = "no response from upstream server"
	messageLocalFailure = "internal client error"
)
