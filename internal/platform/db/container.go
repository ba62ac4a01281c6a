//go:build integration

package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ferdiebergado/templat/internal/config"
	timex "github.com/ferdiebergado/templat/internal/pkg/time"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Setup starts a disposable postgres container, runs the migrations and returns
// a connection plus a transaction that is rolled back when the test ends.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := pgcontainer.Run(ctx,
		"postgres:17-alpine",
		pgcontainer.WithDatabase("templat"),
		pgcontainer.WithUsername("templat"),
		pgcontainer.WithPassword("templat"),
		pgcontainer.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	cfg := &config.DB{
		Driver:       "pgx",
		MaxOpenConns: 5,
		MaxIdleConns: 1,
		PingTimeout:  timex.Duration{Duration: 10 * time.Second},
		Name:         "templat",
	}

	conn, err := Open(ctx, cfg, dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := Migrate(ctx, conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, tx
}
