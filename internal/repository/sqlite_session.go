package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pomodoro/internal/db"
	"github.com/alexanderramin/pomodoro/internal/domain"
)

const sessionColumns = `id, started_at, ended_at, work_min, short_pause_min, long_pause_min, shifts_per_cycle,
	worked_ms, paused_ms, shifts, pauses, recorded, history_key, created_at`

// SQLiteSessionRepo implements SessionRepo on the SQLite journal.
// Phases are stored by SQLitePhaseRepo; GetByID loads them, ListRecent does not.
type SQLiteSessionRepo struct {
	db db.Journal
}

func NewSQLiteSessionRepo(journal db.Journal) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: journal}
}

// Create writes the session and all of its phases in one journal
// transaction.
func (r *SQLiteSessionRepo) Create(ctx context.Context, rec *domain.SessionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = nowUTC()
	}
	return db.WriteSession(ctx, r.db, rec.Summary.ID, func(tx db.DBTX) error {
		if err := insertSession(ctx, tx, rec); err != nil {
			return err
		}
		return NewSQLitePhaseRepo(tx).CreateBatch(ctx, rec.Summary.ID, rec.Summary.Phases)
	})
}

func insertSession(ctx context.Context, tx db.DBTX, rec *domain.SessionRecord) error {
	s := rec.Summary
	query := `INSERT INTO pomodoro_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		s.ID,
		formatTime(s.StartedAt),
		formatTime(s.EndedAt),
		s.Config.WorkMinutes,
		s.Config.ShortPauseMinutes,
		s.Config.LongPauseMinutes,
		s.Config.ShiftsPerCycle,
		durationToMillis(s.WorkTotal),
		durationToMillis(s.PauseTotal),
		s.Shifts,
		s.Pauses,
		boolToInt(rec.Recorded),
		rec.HistoryKey,
		formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pomodoro session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.SessionRecord, error) {
	query := `SELECT ` + sessionColumns + ` FROM pomodoro_sessions WHERE id = ?`
	rec, err := r.scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	phases, err := NewSQLitePhaseRepo(r.db).ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Summary.Phases = phases
	return rec, nil
}

// ListRecent returns sessions started within the last days days, newest first.
func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.SessionRecord, error) {
	query := `SELECT ` + sessionColumns + ` FROM pomodoro_sessions
		WHERE started_at >= strftime('%Y-%m-%dT%H:%M:%SZ', 'now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()

	var records []*domain.SessionRecord
	for rows.Next() {
		rec, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return records, nil
}

// Delete removes a session; its phases go with it via ON DELETE CASCADE.
func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pomodoro_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pomodoro session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("pomodoro session %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSessionRepo) scanSession(row rowScanner) (*domain.SessionRecord, error) {
	var rec domain.SessionRecord
	s := &rec.Summary
	var startedAtStr, endedAtStr, createdAtStr string
	var workedMs, pausedMs int64
	var recorded int

	err := row.Scan(
		&s.ID, &startedAtStr, &endedAtStr,
		&s.Config.WorkMinutes, &s.Config.ShortPauseMinutes, &s.Config.LongPauseMinutes, &s.Config.ShiftsPerCycle,
		&workedMs, &pausedMs, &s.Shifts, &s.Pauses, &recorded, &rec.HistoryKey, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pomodoro session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning pomodoro session: %w", err)
	}

	if s.StartedAt, err = parseTime(startedAtStr); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if s.EndedAt, err = parseTime(endedAtStr); err != nil {
		return nil, fmt.Errorf("parsing ended_at: %w", err)
	}
	if rec.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.WorkTotal = millisToDuration(workedMs)
	s.PauseTotal = millisToDuration(pausedMs)
	rec.Recorded = intToBool(recorded)
	return &rec, nil
}
