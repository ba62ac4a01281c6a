package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/config"
	"github.com/ferdiebergado/templat/internal/file"
	"github.com/ferdiebergado/templat/internal/platform/db"
	"github.com/ferdiebergado/templat/internal/platform/hash"
	"github.com/ferdiebergado/templat/internal/platform/jwt"
	"github.com/ferdiebergado/templat/internal/platform/router"
	"github.com/ferdiebergado/templat/internal/platform/storage"
	"github.com/ferdiebergado/templat/internal/platform/validation"
	"github.com/ferdiebergado/templat/internal/user"
)

// Providers holds the dependencies the routes are built from.
// The self mode fields are nil in delegated mode. Store is nil when storage is not configured.
type Providers struct {
	Router    router.Router
	Validator validation.Validator
	Verifier  auth.Verifier
	Store     storage.ObjectStore

	DB       *sql.DB
	UserRepo user.Repository
	Signer   jwt.Signer
	Hasher   hash.Hasher
	TxMgr    db.TxManager
}

type App struct {
	server          *http.Server
	config          *config.Config
	providers       *Providers
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

// New builds the server and registers the global middlewares followed by the routes of the configured mode.
func New(cfg *config.Config, providers *Providers, middlewares []router.Middleware) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		server:          server,
		config:          cfg,
		providers:       providers,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	for _, mw := range middlewares {
		a.providers.Router.Use(mw)
	}
	a.setupRoutes()

	return a
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) setupRoutes() {
	p := a.providers
	maxBody := a.config.Server.MaxBodyBytes

	mountOpsRoutes(p.Router)

	var authSvc auth.Service
	if a.config.App.Mode == config.ModeSelf {
		userSvc := user.NewService(p.UserRepo)
		mountUserRoutes(p.Router, user.NewHandler(userSvc), p.Verifier)
		authSvc = auth.NewService(userSvc, p.Hasher, p.Signer, p.TxMgr, a.config.JWT.TTL())
	}
	mountAuthRoutes(p.Router, auth.NewHandler(authSvc), p.Validator, p.Verifier, maxBody)

	if p.Store != nil {
		st := a.config.Storage
		fileHandler := file.NewHandler(p.Store, st.Bucket, st.MaxUploadBytes, st.LinkTTL.Duration)
		mountFileRoutes(p.Router, fileHandler, p.Verifier)
	}

	slog.Info("Routes mounted.", "mode", a.config.App.Mode, "storage", p.Store != nil)
}

// Start serves until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown cancels in-flight request contexts and waits for them to finish.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
