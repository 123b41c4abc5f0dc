package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fwojciec/reservo"
)

// Ensure AuthService implements reservo.AuthService.
var _ reservo.AuthService = (*AuthService)(nil)

// AuthService implements reservo.AuthService. The session cookie set by
// /auth/login is kept in the Client's cookie jar.
type AuthService struct {
	client *Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login starts a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*reservo.User, error) {
	if email == "" || password == "" {
		return nil, reservo.Errorf(reservo.EINVALID, "email and password required")
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// Me returns the user of the current session.
func (s *AuthService) Me(ctx context.Context) (*reservo.User, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// Logout ends the session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func decodeUser(raw json.RawMessage) (*reservo.User, error) {
	var u reservo.User
	if err := decodeEnvelope(raw, "user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
