package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/config"
	"github.com/ferdiebergado/templat/internal/platform/db"
	"github.com/ferdiebergado/templat/internal/platform/hash"
	"github.com/ferdiebergado/templat/internal/platform/jwt"
	"github.com/ferdiebergado/templat/internal/platform/router"
	"github.com/ferdiebergado/templat/internal/platform/storage"
	"github.com/ferdiebergado/templat/internal/platform/validation"
	"github.com/ferdiebergado/templat/internal/user"
)

var ErrUnknownMode = errors.New("app: unknown auth mode")

// newProviders builds the dependencies of the configured mode. The returned cleanup
// releases them and is safe to call when err is not nil.
func newProviders(ctx context.Context, cfg *config.Config) (*Providers, func(), error) {
	p := &Providers{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
	}
	cleanup := func() {
		if p.DB != nil {
			if err := p.DB.Close(); err != nil {
				slog.Error("Failed to close the database.", "reason", err)
			}
		}
	}

	var err error
	switch cfg.App.Mode {
	case config.ModeSelf:
		err = setupSelfMode(ctx, cfg, p)
	case config.ModeDelegated:
		setupDelegatedMode(cfg, p)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMode, cfg.App.Mode)
	}
	if err != nil {
		return nil, cleanup, err
	}

	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return nil, cleanup, fmt.Errorf("new s3 store: %w", err)
		}
		ensureBucket(ctx, store, cfg.Storage.Bucket)
		p.Store = store
	}

	return p, cleanup, nil
}

func setupSelfMode(ctx context.Context, cfg *config.Config, p *Providers) error {
	conn, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	p.DB = conn

	if err := db.Migrate(ctx, conn); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	signer, err := jwt.NewGolangJWTSigner(cfg.JWT)
	if err != nil {
		return fmt.Errorf("new jwt signer: %w", err)
	}

	p.UserRepo = user.NewRepository(conn)
	p.Signer = signer
	p.Hasher = hash.NewBcryptHasher(cfg.Bcrypt.Cost)
	p.TxMgr = db.NewSQLTxManager(conn)
	p.Verifier = auth.NewLocalVerifier(signer)

	return nil
}

func setupDelegatedMode(cfg *config.Config, p *Providers) {
	remote := cfg.RemoteAuth
	if remote.Endpoint == "" {
		slog.Warn("AUTH_SERVICE_ENDPOINT is not set, every token will be rejected as unverifiable.")
	}

	client := &http.Client{Timeout: remote.Timeout.Duration}
	p.Verifier = auth.NewRemoteVerifier(remote.Endpoint, client)
}

// ensureBucket creates the bucket when missing. Failures are logged so the server
// can still start against a store that denies bucket operations.
func ensureBucket(ctx context.Context, store storage.ObjectStore, bucket string) {
	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		slog.Warn("Cannot check the storage bucket.", "bucket", bucket, "reason", err)
		return
	}
	if exists {
		return
	}

	if err := store.CreateBucket(ctx, bucket); err != nil {
		slog.Warn("Cannot create the storage bucket.", "bucket", bucket, "reason", err)
		return
	}
	slog.Info("Storage bucket created.", "bucket", bucket)
}
