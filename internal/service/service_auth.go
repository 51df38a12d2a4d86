package service

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

// authService forwards registration, sign-in and password reset calls.
// Credentials are never inspected or logged; the upstream decides.
type authService struct {
	upstream adapter.UpstreamAdapter

	logger *logger.Logger
}

func NewAuthService(upstream adapter.UpstreamAdapter, logger *logger.Logger) AuthService {
	return &authService{upstream: upstream, logger: logger}
}

func (a *authService) Register(ctx context.Context, user models.User) (*models.UpstreamPayload, error) {
	return logged(ctx, a.logger, adapter.OpRegister, func() (*models.UpstreamPayload, error) {
		return a.upstream.Register(ctx, user)
	})
}

func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (*models.UpstreamPayload, error) {
	return logged(ctx, a.logger, adapter.OpSignIn, func() (*models.UpstreamPayload, error) {
		return a.upstream.SignIn(ctx, credentials)
	})
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (*models.UpstreamPayload, error) {
	return logged(ctx, a.logger, adapter.OpRequestPasswordReset, func() (*models.UpstreamPayload, error) {
		return a.upstream.RequestPasswordReset(ctx, req)
	})
}

func (a *authService) ResetPassword(ctx context.Context, req models.PasswordReset) (*models.UpstreamPayload, error) {
	return logged(ctx, a.logger, adapter.OpResetPassword, func() (*models.UpstreamPayload, error) {
		return a.upstream.ResetPassword(ctx, req)
	})
}
