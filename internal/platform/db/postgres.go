package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/templat/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewPostgresDB opens a pooled connection with the given config and pings it.
func NewPostgresDB(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	return Open(ctx, cfg, cfg.DSN())
}

// Open is NewPostgresDB with an explicit DSN.
func Open(ctx context.Context, cfg *config.DB, dsn string) (*sql.DB, error) {
	slog.Info("Connecting to the database...")
	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("Connected to the database.", "db", cfg.Name)

	return conn, nil
}
