package db

import (
	"context"
	"fmt"
	"log/slog"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user', 'guest')),
	metadata JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at);
`

// Migrate creates the tables used by the self-hosted auth mode. It is idempotent.
func Migrate(ctx context.Context, exec Executor) error {
	slog.Info("Running migrations...")
	if _, err := exec.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	slog.Info("Migrations completed.")
	return nil
}
