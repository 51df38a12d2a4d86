package service

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/models"
)

// AppInfoService reports what the running gateway is.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService forwards health checks.
type HealthService interface {
	Check(ctx context.Context) (*models.UpstreamPayload, error)
}

// UserService forwards user management calls. token is the caller's
// Authorization header value.
type UserService interface {
	List(ctx context.Context, token string) (*models.UpstreamPayload, error)
	Create(ctx context.Context, token string, user models.User) (*models.UpstreamPayload, error)
	Get(ctx context.Context, token, id string) (*models.UpstreamPayload, error)
	Update(ctx context.Context, token, id string, update models.UserUpdate) (*models.UpstreamPayload, error)
	Delete(ctx context.Context, token, id string) (*models.UpstreamPayload, error)
}

// AuthService forwards the public authentication calls.
type AuthService interface {
	Register(ctx context.Context, user models.User) (*models.UpstreamPayload, error)
	SignIn(ctx context.Context, credentials models.Credentials) (*models.UpstreamPayload, error)
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (*models.UpstreamPayload, error)
	ResetPassword(ctx context.Context, req models.PasswordReset) (*models.UpstreamPayload, error)
}

// TwoFactorService forwards two-factor authentication calls.
type TwoFactorService interface {
	// GenerateQR returns the upstream QR image wrapped in a text-safe envelope.
	GenerateQR(ctx context.Context, token string) (models.QRCode, error)
	TurnOn(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error)
	Authenticate(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error)
}
