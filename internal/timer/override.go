package timer

import (
	"sync/atomic"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// Overrides holds the manual "end this phase now" signals. Raise may be called
// from any goroutine; the timer consumes the flag on its next poll.
type Overrides struct {
	work  atomic.Bool
	pause atomic.Bool
}

// NewOverrides returns a set with no signal raised.
func NewOverrides() *Overrides {
	return &Overrides{}
}

// Raise requests an early end of the current phase of type p.
func (o *Overrides) Raise(p domain.Phase) {
	if o == nil {
		return
	}
	o.flag(p).Store(true)
}

// EndWork is shorthand for Raise(domain.PhaseWork).
func (o *Overrides) EndWork() { o.Raise(domain.PhaseWork) }

// EndPause is shorthand for Raise(domain.PhasePause).
func (o *Overrides) EndPause() { o.Raise(domain.PhasePause) }

func (o *Overrides) take(p domain.Phase) bool {
	if o == nil {
		return false
	}
	return o.flag(p).Swap(false)
}

func (o *Overrides) clear(p domain.Phase) {
	if o == nil {
		return
	}
	o.flag(p).Store(false)
}

func (o *Overrides) flag(p domain.Phase) *atomic.Bool {
	if p == domain.PhaseWork {
		return &o.work
	}
	return &o.pause
}
