package domain

import "time"

// PhaseResult describes one completed phase.
type PhaseResult struct {
	Phase     Phase
	PauseKind PauseKind
	Number    int
	StartedAt time.Time
	Elapsed   time.Duration
	EndReason EndReason
}

// SessionSummary is the outcome of one program run. It is produced once by
// the timer when the run stops and is not modified afterwards.
type SessionSummary struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Config     Config
	WorkTotal  time.Duration
	PauseTotal time.Duration
	Shifts     int
	Pauses     int
	Phases     []PhaseResult
}

// Total returns the combined work and pause time.
func (s SessionSummary) Total() time.Duration {
	return s.WorkTotal + s.PauseTotal
}

// SessionRecord is a session as kept in the journal database.
type SessionRecord struct {
	Summary SessionSummary
	// Recorded reports whether the session was also written to the history file.
	Recorded   bool
	HistoryKey string
	CreatedAt  time.Time
}
