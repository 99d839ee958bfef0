package timer

import (
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventPhaseStarted EventType = "phase_started"
	EventTick         EventType = "tick"
	EventPhaseEnded   EventType = "phase_ended"
	EventStopped      EventType = "stopped"
)

// Event is a timer update for observers. Result is set on phase_ended,
// Summary on stopped.
type Event struct {
	Type      EventType
	Phase     domain.Phase
	PauseKind domain.PauseKind
	Number    int
	Target    time.Duration
	Elapsed   time.Duration
	Result    *domain.PhaseResult
	Summary   *domain.SessionSummary
	At        time.Time
}

// Progress returns the fraction of the phase target already elapsed, in [0, 1].
func (e Event) Progress() float64 {
	if e.Target <= 0 {
		return 1
	}
	p := float64(e.Elapsed) / float64(e.Target)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Observer receives timer events. Observers are called synchronously from
// the timer loop and must not block.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
