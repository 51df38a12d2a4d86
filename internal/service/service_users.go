package service

import (
	"context"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/models"
)

// userService forwards user management calls. The gateway holds no user
// state: every call is a single upstream round trip.
type userService struct {
	upstream adapter.UpstreamAdapter

	logger *logger.Logger
}

func NewUserService(upstream adapter.UpstreamAdapter, logger *logger.Logger) UserService {
	return &userService{upstream: upstream, logger: logger}
}

func (u *userService) List(ctx context.Context, token string) (*models.UpstreamPayload, error) {
	return logged(ctx, u.logger, adapter.OpListUsers, func() (*models.UpstreamPayload, error) {
		return u.upstream.ListUsers(ctx, token)
	})
}

func (u *userService) Create(ctx context.Context, token string, user models.User) (*models.UpstreamPayload, error) {
	return logged(ctx, u.logger, adapter.OpCreateUser, func() (*models.UpstreamPayload, error) {
		return u.upstream.CreateUser(ctx, token, user)
	})
}

func (u *userService) Get(ctx context.Context, token, id string) (*models.UpstreamPayload, error) {
	return logged(ctx, u.logger, adapter.OpGetUser, func() (*models.UpstreamPayload, error) {
		return u.upstream.GetUser(ctx, token, id)
	})
}

func (u *userService) Update(ctx context.Context, token, id string, update models.UserUpdate) (*models.UpstreamPayload, error) {
	return logged(ctx, u.logger, adapter.OpUpdateUser, func() (*models.UpstreamPayload, error) {
		return u.upstream.UpdateUser(ctx, token, id, update)
	})
}

func (u *userService) Delete(ctx context.Context, token, id string) (*models.UpstreamPayload, error) {
	return logged(ctx, u.logger, adapter.OpDeleteUser, func() (*models.UpstreamPayload, error) {
		return u.upstream.DeleteUser(ctx, token, id)
	})
}
