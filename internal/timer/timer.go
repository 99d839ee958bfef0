// Package timer implements the pomodoro interval state machine: alternating
// work and pause phases polled on a fixed interval until the run context is
// cancelled.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultPollInterval = 100 * time.Millisecond
	MinPollInterval     = 10 * time.Millisecond
	MaxPollInterval     = time.Second
)

// Notification texts sent when a phase runs out.
const (
	WorkTimeUpMessage  = "work time is up"
	PauseTimeUpMessage = "pause time is up"
)

// Notifier delivers a phase-end notification. Implementations must return
// promptly; a returned error is logged and otherwise ignored.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Options contains runtime options for Timer.
type Options struct {
	PollInterval time.Duration
	// NotifyOnOverride also notifies when a phase was ended manually.
	// By default only timeouts notify.
	NotifyOnOverride bool
	Clock            Clock
	Notifier         Notifier
	Logger           *slog.Logger
	NewID            func() string
}

// Timer runs one pomodoro session.
type Timer struct {
	config    domain.Config
	overrides *Overrides
	options   Options
}

// New creates a Timer for cfg. overrides may be nil when no manual override
// source exists.
func New(cfg domain.Config, overrides *Overrides, options Options) *Timer {
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.PollInterval < MinPollInterval {
		options.PollInterval = MinPollInterval
	}
	if options.PollInterval > MaxPollInterval {
		options.PollInterval = MaxPollInterval
	}
	if options.Clock == nil {
		options.Clock = realClock{}
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.NewID == nil {
		options.NewID = func() string { return uuid.New().String() }
	}
	return &Timer{config: cfg, overrides: overrides, options: options}
}

// Run alternates work and pause phases until ctx is cancelled and returns the
// summary of all phases completed before that. The phase in progress at
// cancellation is discarded.
func (t *Timer) Run(ctx context.Context, observers ...Observer) domain.SessionSummary {
	summary := domain.SessionSummary{
		ID:        t.options.NewID(),
		StartedAt: t.options.Clock.Now(),
		Config:    t.config,
	}

	phase := domain.PhaseWork
	for {
		kind := domain.PauseNone
		number := summary.Shifts + 1
		if phase == domain.PhasePause {
			number = summary.Pauses + 1
			kind = domain.PauseKindFor(number, t.config.ShiftsPerCycle)
		}

		result, stopped := t.runPhase(ctx, phase, kind, number, observers)
		if stopped {
			break
		}

		if phase == domain.PhaseWork {
			summary.WorkTotal += result.Elapsed
			summary.Shifts++
		} else {
			summary.PauseTotal += result.Elapsed
			summary.Pauses++
		}
		summary.Phases = append(summary.Phases, result)

		emit(observers, Event{
			Type:      EventPhaseEnded,
			Phase:     result.Phase,
			PauseKind: result.PauseKind,
			Number:    result.Number,
			Target:    t.target(phase, kind),
			Elapsed:   result.Elapsed,
			Result:    &result,
			At:        result.StartedAt.Add(result.Elapsed),
		})
		t.notify(ctx, result)

		phase = phase.Other()
	}

	summary.EndedAt = t.options.Clock.Now()
	emit(observers, Event{
		Type:    EventStopped,
		Phase:   phase,
		Summary: &summary,
		At:      summary.EndedAt,
	})
	return summary
}

func (t *Timer) runPhase(ctx context.Context, phase domain.Phase, kind domain.PauseKind, number int, observers []Observer) (domain.PhaseResult, bool) {
	target := t.target(phase, kind)
	start := t.options.Clock.Now()
	t.overrides.clear(phase)

	emit(observers, Event{
		Type:      EventPhaseStarted,
		Phase:     phase,
		PauseKind: kind,
		Number:    number,
		Target:    target,
		At:        start,
	})

	for {
		select {
		case <-ctx.Done():
			return domain.PhaseResult{}, true
		case <-t.options.Clock.After(t.options.PollInterval):
		}
		// Both channels may be ready on the same tick; cancellation wins.
		if ctx.Err() != nil {
			return domain.PhaseResult{}, true
		}

		now := t.options.Clock.Now()
		elapsed := now.Sub(start)
		result := domain.PhaseResult{
			Phase:     phase,
			PauseKind: kind,
			Number:    number,
			StartedAt: start,
			Elapsed:   elapsed,
		}
		if elapsed >= target {
			result.EndReason = domain.EndTimeout
			return result, false
		}
		if t.overrides.take(phase) {
			result.EndReason = domain.EndOverride
			return result, false
		}

		emit(observers, Event{
			Type:      EventTick,
			Phase:     phase,
			PauseKind: kind,
			Number:    number,
			Target:    target,
			Elapsed:   elapsed,
			At:        now,
		})
	}
}

func (t *Timer) target(phase domain.Phase, kind domain.PauseKind) time.Duration {
	if phase == domain.PhaseWork {
		return t.config.WorkDuration()
	}
	return t.config.PauseDuration(kind)
}

func (t *Timer) notify(ctx context.Context, result domain.PhaseResult) {
	if t.options.Notifier == nil {
		return
	}
	if result.EndReason == domain.EndOverride && !t.options.NotifyOnOverride {
		return
	}
	message := WorkTimeUpMessage
	if result.Phase == domain.PhasePause {
		message = PauseTimeUpMessage
	}
	if err := t.options.Notifier.Notify(ctx, message); err != nil {
		t.options.Logger.WarnContext(ctx, "notification failed",
			"phase", string(result.Phase),
			"number", result.Number,
			"error", err.Error(),
		)
	}
}

func emit(observers []Observer, event Event) {
	for _, obs := range observers {
		if obs != nil {
			obs.OnEvent(event)
		}
	}
}
