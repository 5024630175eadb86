package constants

import "time"

const (
	// Record identifiers are fixed-length hex tokens.
	RecordIDHexLength = 24
	RecordIDByteSize  = 12

	BcryptCost = 10

	JWTSecretMinLength = 32
	DefaultTokenTTL    = 24 * time.Hour

	NameMinLength    = 5
	NameMaxLength    = 100
	AddressMinLength = 5
	AddressMaxLength = 100
	PhoneMinLength   = 5
	PhoneMaxLength   = 20

	// bcrypt rejects inputs longer than 72 bytes.
	PasswordMaxLength = 72

	DefaultMaxRequestSize = 1 << 20

	DBPoolMaxConns          = 25
	DBPoolMinConns          = 5
	DBPoolConnMaxLifetime   = time.Hour
	DBPoolConnMaxIdleTime   = 30 * time.Minute
	DBPoolHealthCheckPeriod = time.Minute
	DBPoolConnectTimeout    = 5 * time.Second
	DBPoolMaxAttempts       = 10
	DBPoolRetryDelay        = time.Second
	DBPoolMetricsInterval   = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second

	DefaultHTTPPort       = "8080"
	DefaultRequestTimeout = 5 * time.Second

	RateLimitCleanupInterval = time.Minute

	RateLimitLoginRequestsPerSecond   = 1.0
	RateLimitLoginBurst               = 5
	RateLimitSignupRequestsPerSecond  = 1.0
	RateLimitSignupBurst              = 3
	RateLimitGeneralRequestsPerSecond = 20.0
	RateLimitGeneralBurst             = 40

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
