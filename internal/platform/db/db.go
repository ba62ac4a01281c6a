package db

import (
	"context"
	"database/sql"
)

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes fn within a database transaction stored in the context passed to fn.
	// The transaction is committed when fn returns nil and rolled back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecutorFromContext returns the transaction in ctx, falling back to conn.
//
//nolint:ireturn //Callers only need the Executor surface.
func ExecutorFromContext(ctx context.Context, conn *sql.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
