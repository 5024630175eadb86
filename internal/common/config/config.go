package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bizdir/backend/internal/common/constants"
)

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variable")
	ErrInvalidJWTSecret   = errors.New("JWT_SECRET must be at least 32 bytes")
)

type Config struct {
	HTTPPort             string
	DatabaseURL          string
	JWTSecret            string
	TokenTTL             time.Duration
	RequestTimeout       time.Duration
	BusinessAuthRequired bool
}

func Load() (Config, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}

	if len(jwtSecret) < constants.JWTSecretMinLength {
		return Config{}, fmt.Errorf("%w: got %d bytes", ErrInvalidJWTSecret, len(jwtSecret))
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:             getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:          databaseURL,
		JWTSecret:            jwtSecret,
		TokenTTL:             getDurationEnv("TOKEN_TTL", constants.DefaultTokenTTL),
		RequestTimeout:       getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		BusinessAuthRequired: getBoolEnv("BUSINESS_AUTH_REQUIRED", true),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
