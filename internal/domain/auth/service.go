package auth

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}
