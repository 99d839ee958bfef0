package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/pomodoro/internal/db"
)

// FailingJournal wraps a journal so that, inside transactions, every
// ExecContext whose SQL contains Match fails with Err. Reads and statements
// outside transactions pass through, so tests can break one write of a
// session and check that nothing of it was kept.
type FailingJournal struct {
	db.Journal
	Match string
	Err   error
}

func (j *FailingJournal) Begin(ctx context.Context) (db.Tx, error) {
	tx, err := j.Journal.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &failingTx{Tx: tx, match: j.Match, err: j.Err}, nil
}

type failingTx struct {
	db.Tx
	match string
	err   error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.match != "" && strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.Tx.ExecContext(ctx, query, args...)
}
