package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authservice "github.com/bizdir/backend/internal/auth/service"
	bizhttp "github.com/bizdir/backend/internal/business/http"
	bizrepo "github.com/bizdir/backend/internal/business/repository"
	bizservice "github.com/bizdir/backend/internal/business/service"
	"github.com/bizdir/backend/internal/common/clock"
	"github.com/bizdir/backend/internal/common/config"
	"github.com/bizdir/backend/internal/common/crypto"
	"github.com/bizdir/backend/internal/common/db"
	commonhttp "github.com/bizdir/backend/internal/common/http"
	"github.com/bizdir/backend/internal/common/jwtverify"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/server"
	"github.com/bizdir/backend/internal/common/validation"
	userhttp "github.com/bizdir/backend/internal/user/http"
	userrepo "github.com/bizdir/backend/internal/user/repository"
	userservice "github.com/bizdir/backend/internal/user/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "bizdir-api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)

	validate := validation.New()
	realClock := clock.NewRealClock()
	idGenerator := crypto.NewHexIDGenerator()
	hasher := &crypto.BcryptHasher{}
	tokenIssuer := authservice.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, realClock)

	businessService := bizservice.NewBusinessService(
		bizrepo.NewPgRepository(pool), validate, idGenerator, realClock, log)
	userService := userservice.NewUserService(
		userrepo.NewPgRepository(pool), validate, hasher, idGenerator, tokenIssuer, realClock, log)

	var authGate func(http.Handler) http.Handler
	if cfg.BusinessAuthRequired {
		authGate = jwtverify.Middleware(cfg.JWTSecret, log)
	} else {
		log.Warn("business mutations are not gated by authentication")
	}

	rateLimiter := commonhttp.NewStrictRateLimiter()

	businessHandler := bizhttp.NewHandler(businessService, authGate, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/biz", limited(rateLimiter, "/biz", businessHandler))
	mux.Handle("/biz/", limited(rateLimiter, "/biz/", businessHandler))

	usersHandler := userhttp.NewHandler(userService, cfg.RequestTimeout, log)
	mux.Handle("/user/login", limited(rateLimiter, "/user/login", usersHandler))
	mux.Handle("/user/signup", limited(rateLimiter, "/user/signup", usersHandler))
	mux.Handle("/user", limited(rateLimiter, "/user", usersHandler))
	mux.Handle("/user/", limited(rateLimiter, "/user/", usersHandler))

	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	handler := commonhttp.BuildBaseHandler(log, mux)

	srv := server.NewServer(server.DefaultServerConfig(cfg.HTTPPort), handler)
	server.StartWithGracefulShutdown(srv, log, func(ctx context.Context) error {
		pool.Close()
		return nil
	})
}

func limited(rl *commonhttp.StrictRateLimiter, path string, next http.Handler) http.Handler {
	return rl.MiddlewareForPath(path)(next)
}
