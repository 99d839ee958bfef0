package db

import (
	"context"
	"database/sql"
)

// DBTX runs journal statements. Both *sql.DB and *sql.Tx satisfy it, so the
// same repository code reads outside a transaction and writes inside one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Tx is an open journal transaction.
type Tx interface {
	DBTX
	Commit() error
	Rollback() error
}

// Journal is the session journal handle: reads run on it directly, writes
// go through Begin.
type Journal interface {
	DBTX
	Begin(ctx context.Context) (Tx, error)
}

var (
	_ DBTX    = (*sql.DB)(nil)
	_ Tx      = (*sql.Tx)(nil)
	_ Journal = (*SQLiteJournal)(nil)
)
