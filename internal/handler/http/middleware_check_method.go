// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. The gateway answers 404 for both cases instead, hiding the
// existence of the route from callers that use an unsupported method, and
// always with a JSON body of the form:
//
//	{"message":"Cannot DELETE /api/auth/signIn","status":404}
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
		Status:  http.StatusNotFound,
	}, http.StatusNotFound)
}
