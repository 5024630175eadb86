package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bizdir/backend/internal/common/clock"
	"github.com/bizdir/backend/internal/common/jwtverify"
	"github.com/bizdir/backend/internal/observability/metrics"
)

// TokenIssuer signs session tokens carrying the user's identifier and
// email as claims.
type TokenIssuer struct {
	jwtSecret []byte
	clock     clock.Clock
	tokenTTL  time.Duration
}

func NewTokenIssuer(jwtSecret string, tokenTTL time.Duration, clock clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret: []byte(jwtSecret),
		clock:     clock,
		tokenTTL:  tokenTTL,
	}
}

func (ti *TokenIssuer) IssueToken(userID, email string) (string, error) {
	now := ti.clock.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"jti":   uuid.NewString(),
		"exp":   now.Add(ti.tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.Inc()
	return tokenString, nil
}

func (ti *TokenIssuer) ParseToken(tokenString string) (jwtverify.Claims, error) {
	return jwtverify.ParseToken(tokenString, ti.jwtSecret)
}
