package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthoniusHendriyanto/chat-login/config"
	"github.com/AnthoniusHendriyanto/chat-login/db"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/handler"
	repo "github.com/AnthoniusHendriyanto/chat-login/internal/auth/repository/postgres"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/service"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/view"
	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel).With("env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL, cfg.DBMaxConns)
	if err != nil {
		log.Error(ctx, "database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, dbPool); err != nil {
			log.Error(ctx, "migrations failed", "error", err)
			os.Exit(1)
		}
	}

	views, err := view.NewRenderer()
	if err != nil {
		log.Error(ctx, "templates failed to load", "error", err)
		os.Exit(1)
	}

	accountRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	authService := service.NewAuthService(accountRepo, tokenService, service.NewBcryptHasher(cfg.BcryptCost), log)
	authHandler := handler.NewAuthHandler(authService, views, log, cfg.CookieSecure)

	app := handler.NewApp(log)
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	handler.RegisterRoutes(app, authHandler)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn(shutdownCtx, "shutdown incomplete", "error", err)
		}
	}()

	log.Info(ctx, "listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
