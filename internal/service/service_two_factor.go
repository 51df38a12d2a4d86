package service

import (
	"context"
	"encoding/base64"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

// QRGeneratedMessage accompanies every generated QR code.
const QRGeneratedMessage = "QR code generated successfully"

type twoFactorService struct {
	upstream adapter.UpstreamAdapter

	logger *logger.Logger
}

func NewTwoFactorService(upstream adapter.UpstreamAdapter, logger *logger.Logger) TwoFactorService {
	return &twoFactorService{upstream: upstream, logger: logger}
}

// GenerateQR fetches the QR image from the upstream and encodes it with
// standard base64 so it can travel inside a JSON body.
func (s *twoFactorService) GenerateQR(ctx context.Context, token string) (models.QRCode, error) {
	payload, err := logged(ctx, s.logger, adapter.OpGenerateQR, func() (*models.UpstreamPayload, error) {
		return s.upstream.GenerateQR(ctx, token)
	})
	if err != nil {
		return models.QRCode{}, err
	}

	return models.QRCode{
		Message: QRGeneratedMessage,
		QRCode:  base64.StdEncoding.EncodeToString(payload.Body),
	}, nil
}

func (s *twoFactorService) TurnOn(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error) {
	return logged(ctx, s.logger, adapter.OpTurnOn2FA, func() (*models.UpstreamPayload, error) {
		return s.upstream.TurnOn2FA(ctx, token, code)
	})
}

func (s *twoFactorService) Authenticate(ctx context.Context, token string, code models.TwoFactorCode) (*models.UpstreamPayload, error) {
	return logged(ctx, s.logger, adapter.OpAuthenticate2FA, func() (*models.UpstreamPayload, error) {
		return s.upstream.Authenticate2FA(ctx, token, code)
	})
}
