package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory journal, used by tests.
const MemoryPath = ":memory:"

// journalPragmas run on every new journal connection, in order. Two
// pomodoro processes may share one journal file, so writers wait for the
// lock instead of failing with SQLITE_BUSY.
var journalPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// OpenJournal opens the session journal at path, creating its directory,
// and brings the schema up to date.
func OpenJournal(path string) (*SQLiteJournal, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	// Each in-memory connection is its own database.
	if path == MemoryPath {
		database.SetMaxOpenConns(1)
	}

	for _, pragma := range journalPragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating journal: %w", err)
	}
	return &SQLiteJournal{DB: database}, nil
}
