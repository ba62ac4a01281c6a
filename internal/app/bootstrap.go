package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/templat/internal/config"
	"github.com/ferdiebergado/templat/internal/middleware"
	"github.com/ferdiebergado/templat/internal/pkg/logging"
	"github.com/ferdiebergado/templat/internal/platform/router"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

// Run loads the configuration, serves until ctx is done and then shuts down gracefully.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != config.EnvProduction {
		if err := env.Load(envFile); err != nil {
			slog.Warn("No env file loaded.", "file", envFile, "reason", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	providers, cleanup, err := newProviders(ctx, cfg)
	defer cleanup()
	if err != nil {
		return err
	}

	api := New(cfg, providers, globalMiddlewares(cfg.Server))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// globalMiddlewares are ordered outermost first. InjectWriter must wrap LogRequest.
func globalMiddlewares(cfg *config.Server) []router.Middleware {
	middlewares := []router.Middleware{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
	}

	if cfg.AllowedOrigin != "" {
		middlewares = append(middlewares, middleware.CORS(cfg.AllowedOrigin))
	}

	return middlewares
}
