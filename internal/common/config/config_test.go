package config

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key-at-least-32-bytes!!"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bizdir")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %v", cfg.TokenTTL)
	}
	if !cfg.BusinessAuthRequired {
		t.Error("expected business auth to default to required")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bizdir")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingRequiredEnv) {
		t.Errorf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bizdir")
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); !errors.Is(err, ErrInvalidJWTSecret) {
		t.Errorf("expected ErrInvalidJWTSecret, got %v", err)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); !errors.Is(err, ErrMissingRequiredEnv) {
		t.Errorf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BUSINESS_AUTH_REQUIRED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected token TTL 1h, got %v", cfg.TokenTTL)
	}
	if cfg.BusinessAuthRequired {
		t.Error("expected business auth gate disabled")
	}
}

func TestLoad_MalformedDurationFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected fallback request timeout, got %v", cfg.RequestTimeout)
	}
}
