package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteJournal is a Journal backed by a SQLite database. Close releases it.
type SQLiteJournal struct {
	*sql.DB
}

func (j *SQLiteJournal) Begin(ctx context.Context) (Tx, error) {
	tx, err := j.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// WriteSession applies write for one finished session in a single
// transaction. Nothing is kept when write fails or panics, so a session row
// never exists without its phases.
func WriteSession(ctx context.Context, j Journal, sessionID string, write func(tx DBTX) error) error {
	tx, err := j.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journaling session %s: begin: %w", sessionID, err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := write(tx); err != nil {
		return fmt.Errorf("journaling session %s: %w", sessionID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("journaling session %s: commit: %w", sessionID, err)
	}
	committed = true
	return nil
}
