// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration carries no HTTP address. The gateway has nothing to serve
	// and fails at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServicesProvided is returned by NewHandlers when called without
	// the service layer.
	errNoServicesProvided = errors.New("no services provided")
)
