// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the forwarding core of the gateway.
//
// Every gateway operation is described once in the operation catalogue
// ([Operations]). A call builds a fresh [RequestDescriptor], dispatches it to
// the configured upstream with a single attempt and classifies the result
// into exactly one outcome:
//
//   - a [models.UpstreamPayload] for a 2xx response;
//   - an [*UpstreamError] when the upstream answered with any other status;
//   - a [*NoResponseError] when the request was sent but nothing came back
//     (refused connection, timeout, redirect limit, cancelled caller);
//   - a [*LocalFailureError] when the request could not be built or sent.
//
// Callers tell the failure kinds apart with [errors.As] or with the
// [ErrNoResponse] and [ErrLocalFailure] sentinels.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_adapter_mock.go -package=mock

// UpstreamAdapter forwards gateway operations to the upstream service.
//
// token is the inbound Authorization header value. It is attached verbatim
// to token-required operations when not empty and ignored otherwise.
type UpstreamAdapter interface {
	// Health forwards GET /health.
	Health(ctx context.Context) (*models.UpstreamPayload, error)

	// ListUsers forwards GET /users.
	ListUsers(ctx context.Context, token string) (*models.UpstreamPayload, error)
	// CreateUser forwards POST /users.
	CreateUser(ctx context.Context, token string, user models.User) (*models.UpstreamPayload, error)
	// GetUser forwards GET /users/{id}.
	GetUser(ctx context.Context, token, id string) (*models.UpstreamPayload, error)
	// UpdateUser forwards PATCH /users/{id}.
	UpdateUser(ctx context.Context, token, id string, update models.UserUpdate) (*models.UpstreamPayload, error)
	// DeleteUser forwards DELETE /users/{id}.
	DeleteUser(ctx context.Context, token, id string) (*models.UpstreamPayload, error)

	// Register forwards POST /auth/register.
	Register(ctx context.Context, user models.User) (*models.UpstreamPayload, error)
	// SignIn forwards POST /auth/signIn.
	SignIn(ctx context.Context, credentials models.Credentials) (*models.UpstreamPayload, error)
	// RequestPasswordReset forwards POST /auth/request-reset-password.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (*models.UpstreamPayload, error)
	// ResetPassword forwards POST /auth/reset-password.
	ResetPassword(ctx context.Context, req models.PasswordReset) (*models.UpstreamPayload, error)

	// GenerateQR forwards POST /2fa/generate-qr. The payload body holds the
	// raw image bytes.
	GenerateQR(ctx context.Context, token string) (*models.UpstreamPayload, error)
	// TurnOn2FA forwards POST /2fa/turn-on-qr.
	TurnOn2FA(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error)
	// Authenticate2FA forwards POST /2fa/authenticate.
	Authenticate2FA(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error)
}
