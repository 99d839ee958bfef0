package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/service"
	"github.com/alexanderramin/pomodoro/internal/teatest"
	"github.com/alexanderramin/pomodoro/internal/testutil"
	"github.com/alexanderramin/pomodoro/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimerDriver(t *testing.T) (*teatest.Driver, *timer.Overrides, *int) {
	t.Helper()
	overrides := timer.NewOverrides()
	cancels := 0
	m := newTimerModel(domain.DefaultConfig(), overrides, func() { cancels++ })
	return teatest.New(t, m, teatest.WithSize(80, 24)), overrides, &cancels
}

func phaseEvent(typ timer.EventType, phase domain.Phase, kind domain.PauseKind, number int, elapsed, target time.Duration) timerEventMsg {
	return timerEventMsg(timer.Event{Type: typ, Phase: phase, PauseKind: kind, Number: number, Elapsed: elapsed, Target: target})
}

func TestTimerModel_ShowsCurrentPhaseAndProgress(t *testing.T) {
	d, _, _ := newTimerDriver(t)

	assert.Contains(t, d.View(), "Starting...")

	d.Send(phaseEvent(timer.EventPhaseStarted, domain.PhaseWork, domain.PauseNone, 1, 0, 25*time.Minute))
	d.Send(phaseEvent(timer.EventTick, domain.PhaseWork, domain.PauseNone, 1, 12*time.Minute+30*time.Second, 25*time.Minute))

	view := d.View()
	assert.Contains(t, view, "SHIFT #1")
	assert.Contains(t, view, "00:12:30")
	assert.Contains(t, view, "00:25:00")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "end work")
}

func TestTimerModel_FinishedPhasesAreListed(t *testing.T) {
	d, _, _ := newTimerDriver(t)

	result := domain.PhaseResult{Phase: domain.PhaseWork, Number: 1, Elapsed: 10 * time.Second, EndReason: domain.EndOverride}
	d.Send(timerEventMsg(timer.Event{Type: timer.EventPhaseEnded, Phase: domain.PhaseWork, Number: 1, Result: &result}))
	d.Send(phaseEvent(timer.EventPhaseStarted, domain.PhasePause, domain.PauseShort, 1, 0, 5*time.Minute))

	view := d.View()
	assert.Contains(t, view, "shift #1: 00:00:10 h (ended early)")
	assert.Contains(t, view, "SHORT PAUSE #1")
}

func TestTimerModel_KeysRaiseOverrides(t *testing.T) {
	d, overrides, _ := newTimerDriver(t)
	cfg := domain.Config{WorkMinutes: 1, ShortPauseMinutes: 1, LongPauseMinutes: 1, ShiftsPerCycle: 1}
	tm := timer.New(cfg, overrides, timer.Options{
		PollInterval: time.Second,
		Clock:        testutil.NewFakeClock(time.Date(2026, 2, 9, 9, 30, 0, 0, time.Local)),
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	summary := tm.Run(ctx, timer.ObserverFunc(func(e timer.Event) {
		switch {
		case e.Type == timer.EventTick && e.Phase == domain.PhaseWork:
			d.Press("w") // wrong phase, ignored
			d.Press("p")
		case e.Type == timer.EventPhaseEnded:
			cancel()
		}
	}))

	require.Len(t, summary.Phases, 1)
	assert.Equal(t, domain.EndOverride, summary.Phases[0].EndReason)
	assert.Equal(t, 2*time.Second, summary.Phases[0].Elapsed)
}

func TestTimerModel_StopCancelsOnceAndQuitsWhenRunEnds(t *testing.T) {
	d, _, cancels := newTimerDriver(t)

	d.Press("q")
	d.Press("ctrl+c")
	assert.Equal(t, 1, *cancels)
	assert.Contains(t, d.View(), "Stopping...")
	assert.False(t, d.Quitting)

	outcome := &service.Outcome{Summary: domain.SessionSummary{Shifts: 1}}
	d.Send(runDoneMsg{outcome: outcome})
	assert.True(t, d.Quitting)
	m := d.Model.(timerModel)
	assert.Same(t, outcome, m.outcome)
	assert.Empty(t, d.View())
}

func TestLineRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := newLineRenderer(&buf)

	r.OnEvent(timer.Event(phaseEvent(timer.EventPhaseStarted, domain.PhaseWork, domain.PauseNone, 1, 0, time.Minute)))
	r.OnEvent(timer.Event(phaseEvent(timer.EventTick, domain.PhaseWork, domain.PauseNone, 1, 100*time.Millisecond, time.Minute)))
	r.OnEvent(timer.Event(phaseEvent(timer.EventTick, domain.PhaseWork, domain.PauseNone, 1, time.Second, time.Minute)))
	r.OnEvent(timer.Event(phaseEvent(timer.EventTick, domain.PhaseWork, domain.PauseNone, 1, 1100*time.Millisecond, time.Minute)))
	result := domain.PhaseResult{Phase: domain.PhaseWork, Number: 1, Elapsed: time.Minute, EndReason: domain.EndTimeout}
	r.OnEvent(timer.Event{Type: timer.EventPhaseEnded, Result: &result})

	assert.Equal(t,
		"\r\tshift #1: 00:00:00 h"+
			"\r\tshift #1: 00:00:01 h"+
			"\r\tshift #1: 00:01:00 h\n",
		buf.String())
}

func TestReadControls(t *testing.T) {
	overrides := timer.NewOverrides()
	stopped := false

	readControls(bufio.NewScanner(strings.NewReader("x\nP\n w \nq\np\n")), overrides, func() { stopped = true })

	assert.True(t, stopped)
}
