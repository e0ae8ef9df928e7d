package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/condobooks/condo_books_app/pkg/config"
)

// GenerateToken issues a signed JWT for the authenticated user.
func GenerateToken(cfg *config.AppConfig, username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    cfg.JWTIssuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTExpiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseAndValidateToken parses a JWT, validates its signature and
// standard claims, and returns the claims when valid.
func ParseAndValidateToken(tokenString, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
