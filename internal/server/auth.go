package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Reinaldo-Kn/pifatro/internal/apperrors"
	"github.com/Reinaldo-Kn/pifatro/internal/config"
)

// TokenManager issues and verifies the HS256 tokens that gate the
// persistence collaborator. A connection without a verified token runs
// in guest mode: the game plays normally, save/load are refused.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager from the auth config.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTLDuration(),
	}
}

// Issue creates a signed token for the given username.
func (tm *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify validates a token and returns the username it was issued for.
func (tm *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return tm.secret, nil
		})
	if err != nil {
		return "", apperrors.ErrBadToken.Wrap(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrBadToken.Wrap(fmt.Errorf("token has no subject"))
	}
	return claims.Subject, nil
}
