package services

import (
	"context"
	"fmt"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/utils"
	"github.com/condobooks/condo_books_app/pkg/config"
)

type authService struct {
	BaseService
	cfg *config.AppConfig
}

// NewAuthService creates the single-user authentication service.
func NewAuthService(cfg *config.AppConfig) portssvc.AuthService {
	return &authService{cfg: cfg}
}

// Login checks the credentials against the configured user and issues a
// signed token. The failure reason is logged but never returned, so the
// response does not reveal whether the username or the password was
// wrong.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.cfg.AuthUsername {
		s.LogWarn(ctx, "login rejected", "reason", "unknown username")
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, s.cfg.AuthPasswordHash) {
		s.LogWarn(ctx, "login rejected", "reason", "bad password", "username", username)
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	token, err := utils.GenerateToken(s.cfg, username)
	if err != nil {
		s.LogError(ctx, "token generation failed", "error", err)
		return "", fmt.Errorf("generating token: %w", err)
	}
	return token, nil
}
