package testutil

import (
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/google/uuid"
)

// Summary options
type SummaryOption func(*domain.SessionSummary)

func WithStartedAt(t time.Time) SummaryOption {
	return func(s *domain.SessionSummary) {
		s.StartedAt = t
	}
}

func WithConfig(cfg domain.Config) SummaryOption {
	return func(s *domain.SessionSummary) {
		s.Config = cfg
	}
}

// WithPhase appends a completed phase and updates the totals and counters.
func WithPhase(phase domain.Phase, elapsed time.Duration, reason domain.EndReason) SummaryOption {
	return func(s *domain.SessionSummary) {
		start := s.StartedAt.Add(s.Total())
		result := domain.PhaseResult{
			Phase:     phase,
			StartedAt: start,
			Elapsed:   elapsed,
			EndReason: reason,
		}
		if phase == domain.PhaseWork {
			s.Shifts++
			s.WorkTotal += elapsed
			result.Number = s.Shifts
		} else {
			s.Pauses++
			s.PauseTotal += elapsed
			result.Number = s.Pauses
			result.PauseKind = domain.PauseKindFor(s.Pauses, s.Config.ShiftsPerCycle)
		}
		s.Phases = append(s.Phases, result)
		s.EndedAt = start.Add(elapsed)
	}
}

// NewTestSummary builds a finished session summary. Without options it is an
// empty session started 2026-02-09 09:30 local time (a Monday).
func NewTestSummary(opts ...SummaryOption) domain.SessionSummary {
	start := time.Date(2026, 2, 9, 9, 30, 0, 0, time.Local)
	s := domain.SessionSummary{
		ID:        uuid.New().String(),
		StartedAt: start,
		EndedAt:   start,
		Config:    domain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewWorkedSummary is a session with a single work shift of the given length.
func NewWorkedSummary(worked time.Duration, opts ...SummaryOption) domain.SessionSummary {
	all := append([]SummaryOption{}, opts...)
	all = append(all, WithPhase(domain.PhaseWork, worked, domain.EndTimeout))
	return NewTestSummary(all...)
}
