package service

import (
	"context"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/alexanderramin/pomodoro/internal/timer"
)

// Outcome is the result of one timed session.
type Outcome struct {
	Summary   domain.SessionSummary
	Recorded  bool
	Key       string
	Journaled bool
	// RecordErr is set when a qualifying session could not be written to
	// the history file. The run itself still succeeded.
	RecordErr error
}

type SessionService interface {
	// Run times a session until ctx is cancelled, then records and journals it.
	// overrides may be nil when nothing can end phases early.
	Run(ctx context.Context, cfg domain.Config, overrides *timer.Overrides, observers ...timer.Observer) (*Outcome, error)
	GetByID(ctx context.Context, id string) (*domain.SessionRecord, error)
	ListRecent(ctx context.Context, days int) ([]*domain.SessionRecord, error)
	Stats(ctx context.Context, days int) (*domain.JournalStats, error)
	History(ctx context.Context) (history.Store, error)
	// Forget removes one session and its phases from the journal. The
	// history file is left alone.
	Forget(ctx context.Context, id string) error
}
