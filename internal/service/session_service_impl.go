package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/alexanderramin/pomodoro/internal/repository"
	"github.com/alexanderramin/pomodoro/internal/timer"
)

// ErrJournalDisabled is returned by journal queries when no database is open.
var ErrJournalDisabled = errors.New("session journal is disabled")

type sessionService struct {
	recorder     *Recorder
	timerOptions timer.Options
	sessions     repository.SessionRepo
	logger       *slog.Logger
	observer     UseCaseObserver
}

// NewSessionService wires the timer, the history recorder and the journal.
// sessions may be nil to run without a journal.
func NewSessionService(
	recorder *Recorder,
	timerOptions timer.Options,
	sessions repository.SessionRepo,
	observers ...UseCaseObserver,
) SessionService {
	logger := timerOptions.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &sessionService{
		recorder:     recorder,
		timerOptions: timerOptions,
		sessions:     sessions,
		logger:       logger,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Run(ctx context.Context, cfg domain.Config, overrides *timer.Overrides, observers ...timer.Observer) (outcome *Outcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"work_min":         cfg.WorkMinutes,
		"short_pause_min":  cfg.ShortPauseMinutes,
		"long_pause_min":   cfg.LongPauseMinutes,
		"shifts_per_cycle": cfg.ShiftsPerCycle,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "run-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	summary := timer.New(cfg, overrides, s.timerOptions).Run(ctx, observers...)
	outcome = &Outcome{Summary: summary}
	fields["shifts"] = summary.Shifts
	fields["pauses"] = summary.Pauses
	fields["worked_ms"] = summary.WorkTotal.Milliseconds()
	fields["paused_ms"] = summary.PauseTotal.Milliseconds()

	// The run ends by cancellation; persistence must not inherit it.
	persistCtx := context.WithoutCancel(ctx)

	if s.recorder != nil {
		res, recordErr := s.recorder.Record(persistCtx, summary)
		outcome.Recorded = res.Recorded
		outcome.Key = res.Key
		if recordErr != nil {
			outcome.RecordErr = recordErr
			s.logger.WarnContext(ctx, "history write failed", "session_id", summary.ID, "error", recordErr.Error())
		}
	}
	fields["recorded"] = outcome.Recorded

	if s.journalEnabled() {
		if jErr := s.journal(persistCtx, outcome); jErr != nil {
			s.logger.WarnContext(ctx, "journal write failed", "session_id", summary.ID, "error", jErr.Error())
		} else {
			outcome.Journaled = true
		}
	}
	fields["journaled"] = outcome.Journaled
	return outcome, nil
}

func (s *sessionService) journal(ctx context.Context, outcome *Outcome) error {
	rec := &domain.SessionRecord{
		Summary:    outcome.Summary,
		Recorded:   outcome.Recorded,
		HistoryKey: outcome.Key,
	}
	return s.sessions.Create(ctx, rec)
}

func (s *sessionService) journalEnabled() bool {
	return s.sessions != nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.SessionRecord, error) {
	if !s.journalEnabled() {
		return nil, ErrJournalDisabled
	}
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.SessionRecord, error) {
	if !s.journalEnabled() {
		return nil, ErrJournalDisabled
	}
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	return s.sessions.ListRecent(ctx, days)
}

func (s *sessionService) Stats(ctx context.Context, days int) (stats *domain.JournalStats, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"days": days}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "stats",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	records, err := s.ListRecent(ctx, days)
	if err != nil {
		return nil, err
	}
	fields["sessions"] = len(records)
	agg := domain.AggregateStats(records, days)
	return &agg, nil
}

func (s *sessionService) Forget(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "forget-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"session_id": id},
		})
	}()

	if !s.journalEnabled() {
		return ErrJournalDisabled
	}
	return s.sessions.Delete(ctx, id)
}

// History returns the history file contents. An unreadable file yields an
// empty store together with its *history.LoadError.
func (s *sessionService) History(ctx context.Context) (history.Store, error) {
	if s.recorder == nil {
		return history.Store{}, nil
	}
	return history.Load(s.recorder.Path)
}
