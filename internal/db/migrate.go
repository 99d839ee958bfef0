package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pomodoro_sessions (
		id                  TEXT PRIMARY KEY,
		started_at          TEXT NOT NULL,
		ended_at            TEXT NOT NULL,
		work_min            INTEGER NOT NULL CHECK(work_min > 0),
		short_pause_min     INTEGER NOT NULL CHECK(short_pause_min > 0),
		long_pause_min      INTEGER NOT NULL CHECK(long_pause_min > 0),
		shifts_per_cycle    INTEGER NOT NULL CHECK(shifts_per_cycle > 0),
		worked_ms           INTEGER NOT NULL DEFAULT 0,
		paused_ms           INTEGER NOT NULL DEFAULT 0,
		shifts              INTEGER NOT NULL DEFAULT 0,
		pauses              INTEGER NOT NULL DEFAULT 0,
		recorded            INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pomodoro_sessions_started ON pomodoro_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS pomodoro_phases (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES pomodoro_sessions(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		phase       TEXT NOT NULL CHECK(phase IN ('work','pause')),
		pause_kind  TEXT NOT NULL DEFAULT '' CHECK(pause_kind IN ('','short','long')),
		number      INTEGER NOT NULL,
		started_at  TEXT NOT NULL,
		elapsed_ms  INTEGER NOT NULL,
		end_reason  TEXT NOT NULL CHECK(end_reason IN ('timeout','override')),
		UNIQUE(session_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pomodoro_phases_session ON pomodoro_phases(session_id)`,

	// history_key was added after the first release.
	`ALTER TABLE pomodoro_sessions ADD COLUMN history_key TEXT NOT NULL DEFAULT ''`,
}
