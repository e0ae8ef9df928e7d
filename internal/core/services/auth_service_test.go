package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/utils"
	"github.com/condobooks/condo_books_app/pkg/config"
)

func authTestConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	return &config.AppConfig{
		JWTSecret:         "test-secret",
		JWTIssuer:         "condo-books-app",
		JWTExpiryDuration: time.Hour,
		AuthUsername:      "owner",
		AuthPasswordHash:  hash,
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	cfg := authTestConfig(t)
	svc := NewAuthService(cfg)

	token, err := svc.Login(context.Background(), "owner", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(authTestConfig(t))

	_, err := svc.Login(context.Background(), "owner", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Login(context.Background(), "admin", "correct horse battery staple")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
