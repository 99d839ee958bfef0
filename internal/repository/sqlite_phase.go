package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pomodoro/internal/db"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/google/uuid"
)

// SQLitePhaseRepo implements PhaseRepo using a SQLite database.
type SQLitePhaseRepo struct {
	db db.DBTX
}

func NewSQLitePhaseRepo(db db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: db}
}

// CreateBatch inserts phases in order; seq is the 1-based position in the slice.
func (r *SQLitePhaseRepo) CreateBatch(ctx context.Context, sessionID string, phases []domain.PhaseResult) error {
	query := `INSERT INTO pomodoro_phases (id, session_id, seq, phase, pause_kind, number, started_at, elapsed_ms, end_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, p := range phases {
		_, err := r.db.ExecContext(ctx, query,
			uuid.New().String(),
			sessionID,
			i+1,
			string(p.Phase),
			string(p.PauseKind),
			p.Number,
			formatTime(p.StartedAt),
			durationToMillis(p.Elapsed),
			string(p.EndReason),
		)
		if err != nil {
			return fmt.Errorf("inserting phase %d of session %s: %w", i+1, sessionID, err)
		}
	}
	return nil
}

func (r *SQLitePhaseRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.PhaseResult, error) {
	query := `SELECT phase, pause_kind, number, started_at, elapsed_ms, end_reason
		FROM pomodoro_phases WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.PhaseResult
	for rows.Next() {
		var p domain.PhaseResult
		var phase, kind, reason, startedAtStr string
		var elapsedMs int64
		if err := rows.Scan(&phase, &kind, &p.Number, &startedAtStr, &elapsedMs, &reason); err != nil {
			return nil, fmt.Errorf("scanning phase row: %w", err)
		}
		p.Phase = domain.Phase(phase)
		p.PauseKind = domain.PauseKind(kind)
		p.EndReason = domain.EndReason(reason)
		p.Elapsed = millisToDuration(elapsedMs)
		if p.StartedAt, err = parseTime(startedAtStr); err != nil {
			return nil, fmt.Errorf("parsing phase started_at: %w", err)
		}
		phases = append(phases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}
