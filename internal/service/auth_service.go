// Package service implements the application services between the HTTP
// layer and storage: login, ledger CRUD, settings, and report projections.
package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/kasrt/internal/auth"
	"github.com/mmynk/kasrt/internal/models"
)

// AuthService handles login: credential verification plus token issuance.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(authenticator auth.Authenticator, tokens *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, tokens: tokens}
}

// Login verifies the credentials and returns a signed bearer token plus the
// user's role. Failed verification returns auth.ErrInvalidCredentials and
// no token is issued.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, models.Role, error) {
	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		slog.Warn("login rejected", "username", username)
		return "", "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		slog.Error("token generation failed", "username", username, "error", err)
		return "", "", err
	}

	slog.Info("login ok", "username", username, "role", user.Role)
	return token, user.Role, nil
}
