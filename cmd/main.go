package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/codewise-hub/identity-service/config"
	"github.com/codewise-hub/identity-service/db"
	"github.com/codewise-hub/identity-service/internal/identity/handler"
	repo "github.com/codewise-hub/identity-service/internal/identity/repository/postgres"
	"github.com/codewise-hub/identity-service/internal/identity/service"
	"github.com/codewise-hub/identity-service/internal/logging"
	"github.com/codewise-hub/identity-service/pkg/constant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	secret := cfg.TokenSecret
	if secret == "" {
		if cfg.StrictSecret {
			logger.Error("TOKEN_SECRET is not set and STRICT_SECRET is enabled, refusing to start")
			os.Exit(1)
		}
		// Every token signed with the fallback is forgeable by anyone who
		// reads this repository. Acceptable for development only.
		logger.Warn("TOKEN_SECRET is not set, falling back to the built-in development secret; " +
			"tokens are NOT secure until a real secret is configured")
		secret = constant.FallbackTokenSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to open database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	accountRepo := repo.NewAccountRepository(pool)
	sessionRepo := repo.NewSessionRepository(pool)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(secret, cfg.TokenTTL())
	identityService := service.NewIdentityService(accountRepo, sessionRepo, hasher, tokenService, logger)
	authHandler := handler.NewAuthHandler(identityService)

	app := fiber.New()
	app.Use(recover.New())
	handler.RegisterRoutes(app, authHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()
	logger.Info("identity service listening", "port", cfg.Port, "env", cfg.Env)

	<-ctx.Done()

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
