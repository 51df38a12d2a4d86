package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

type httpUpstreamAdapter struct {
	client  *utils.HTTPClient
	baseURL string
}

// NewHTTPUpstreamAdapter constructs the HTTP implementation of
// [UpstreamAdapter] for the upstream described by cfg.
//
// The base URL is not checked here: a call against an unusable address fails
// with a [*LocalFailureError].
func NewHTTPUpstreamAdapter(cfg config.Upstream, logger *logger.Logger) UpstreamAdapter {
	return newHTTPUpstreamAdapter(cfg, nil, logger)
}

func newHTTPUpstreamAdapter(cfg config.Upstream, transport http.RoundTripper, logger *logger.Logger) *httpUpstreamAdapter {
	maxRedirects := config.DefaultUpstreamMaxRedirects
	if cfg.MaxRedirects != nil {
		maxRedirects = *cfg.MaxRedirects
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:      cfg.RequestTimeout,
		MaxRedirects: maxRedirects,
		Transport:    newDispatchTransport(transport),
		Logger:       logger,
	})

	return &httpUpstreamAdapter{client: client, baseURL: cfg.BaseURL}
}

// Health implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) Health(ctx context.Context) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpHealth, "", "", nil)
}

// ListUsers implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) ListUsers(ctx context.Context, token string) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpListUsers, "", token, nil)
}

// CreateUser implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) CreateUser(ctx context.Context, token string, user models.User) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpCreateUser, "", token, user)
}

// GetUser implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) GetUser(ctx context.Context, token, id string) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpGetUser, id, token, nil)
}

// UpdateUser implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) UpdateUser(ctx context.Context, token, id string, update models.UserUpdate) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpUpdateUser, id, token, update)
}

// DeleteUser implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) DeleteUser(ctx context.Context, token, id string) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpDeleteUser, id, token, nil)
}

// Register implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) Register(ctx context.Context, user models.User) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpRegister, "", "", user)
}

// SignIn implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) SignIn(ctx context.Context, credentials models.Credentials) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpSignIn, "", "", credentials)
}

// RequestPasswordReset implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpRequestPasswordReset, "", "", req)
}

// ResetPassword implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) ResetPassword(ctx context.Context, req models.PasswordReset) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpResetPassword, "", "", req)
}

// GenerateQR implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) GenerateQR(ctx context.Context, token string) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpGenerateQR, "", token, nil)
}

// TurnOn2FA implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) TurnOn2FA(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpTurnOn2FA, "", token, code)
}

// Authenticate2FA implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) Authenticate2FA(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error) {
	return h.forward(ctx, OpAuthenticate2FA, "", token, code)
}

// forward performs exactly one upstream call for op and returns its
// classified outcome.
func (h *httpUpstreamAdapter) forward(ctx context.Context, op Operation, id, token string, body any) (*models.UpstreamPayload, error) {
	start := time.Now()

	payload, err := h.do(ctx, op, id, token, body)

	observe(op, err, time.Since(start))
	return payload, err
}

func (h *httpUpstreamAdapter) do(ctx context.Context, op Operation, id, token string, body any) (*models.UpstreamPayload, error) {
	desc, err := NewRequestDescriptor(h.baseURL, op, id, token, body)
	if err != nil {
		return nil, &LocalFailureError{Operation: op, Err: err}
	}

	ctx, dispatched := withDispatchMarker(ctx)

	req := h.client.R().SetContext(ctx)
	if desc.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(desc.Body)
	}
	if desc.Authorization != "" {
		req.SetHeader("Authorization", desc.Authorization)
	}

	logger.FromContext(ctx).Debug().
		Str("operation", op.Name).
		Str("method", op.Method).
		Str("url", desc.URL).
		Msg("forwarding request upstream")

	resp, err := req.Execute(op.Method, desc.URL)

	return classify(desc, resp, err, dispatched.Load())
}
