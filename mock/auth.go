package mock

import (
	"context"

	"github.com/fwojciec/reservo"
)

var _ reservo.AuthService = (*AuthService)(nil)

// AuthService is a mock implementation of reservo.AuthService.
type AuthService struct {
	LoginFn  func(ctx context.Context, email, password string) (*reservo.User, error)
	MeFn     func(ctx context.Context) (*reservo.User, error)
	LogoutFn func(ctx context.Context) error
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*reservo.User, error) {
	return s.LoginFn(ctx, email, password)
}

func (s *AuthService) Me(ctx context.Context) (*reservo.User, error) {
	return s.MeFn(ctx)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.LogoutFn(ctx)
}
