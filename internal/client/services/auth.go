// Package services contains the application services behind the CLI views:
// authentication, catalog, billing, users, and dashboard. Each service wraps
// the REST client, the session manager, and the list cache; views never
// touch those directly.
package services

import (
	"context"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/session"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

// authAPI is the slice of the REST client the auth service needs.
// Satisfied by *api.Client; tests provide fakes.
type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error)
}

// AuthService owns the login/signup/forgot-password/logout flows and is the
// views' window onto the current session.
type AuthService struct {
	api      authAPI
	sessions *session.Manager
	cache    *cache.Store
	log      logging.Logger
}

func NewAuthService(api authAPI, sessions *session.Manager, cache *cache.Store, log logging.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, cache: cache, log: log}
}

// Login authenticates and persists the issued token. API failures surface
// with the backend's message verbatim; nothing is stored on failure.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, models.LoginRequest{UserEmail: email, Password: password})
	if err != nil {
		return err
	}
	return s.sessions.Login(ctx, token, 0)
}

// Signup registers an account. When the backend issues a token right away
// the session opens immediately; otherwise the user logs in separately.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	token, err := s.api.Signup(ctx, req)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	return s.sessions.Login(ctx, token, 0)
}

// ForgotPassword asks the backend to re-issue a token for the account.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	token, err := s.api.ForgotPassword(ctx, models.ForgotPasswordRequest{UserEmail: email})
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	return s.sessions.Login(ctx, token, 0)
}

// Logout clears the session and drops every cached list.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return err
	}
	s.cache.Reset()
	return nil
}

// Current proxies the session manager's single read path.
func (s *AuthService) Current(ctx context.Context) (*session.Session, bool) {
	return s.sessions.Current(ctx)
}
