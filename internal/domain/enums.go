package domain

type Phase string

const (
	PhaseWork  Phase = "work"
	PhasePause Phase = "pause"
)

// Other returns the phase that follows p.
func (p Phase) Other() Phase {
	if p == PhaseWork {
		return PhasePause
	}
	return PhaseWork
}

type PauseKind string

const (
	PauseNone  PauseKind = ""
	PauseShort PauseKind = "short"
	PauseLong  PauseKind = "long"
)

type EndReason string

const (
	EndTimeout  EndReason = "timeout"
	EndOverride EndReason = "override"
)

// PauseKindFor classifies the pauseNumber-th pause (1-based) of a session.
// Every shiftsPerCycle-th pause is long, all others are short.
func PauseKindFor(pauseNumber, shiftsPerCycle int) PauseKind {
	if shiftsPerCycle <= 0 {
		return PauseShort
	}
	if pauseNumber%shiftsPerCycle == 0 {
		return PauseLong
	}
	return PauseShort
}
