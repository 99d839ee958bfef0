package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/service"
	"github.com/alexanderramin/pomodoro/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxBarWidth    = 40
	maxPhaseLines  = 8
	defaultBarSize = 30
)

// timerEventMsg carries a timer event into the bubbletea loop.
type timerEventMsg timer.Event

// runDoneMsg is sent once the session service returns.
type runDoneMsg struct {
	outcome *service.Outcome
	err     error
}

type timerKeyMap struct {
	EndWork  key.Binding
	EndPause key.Binding
	Stop     key.Binding
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		EndWork:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "end work")),
		EndPause: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "end pause")),
		Stop:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "stop")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EndWork, k.EndPause, k.Stop}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// timerModel displays a running session. It never touches the timer's state
// directly: keys raise overrides or cancel the run context.
type timerModel struct {
	cfg       domain.Config
	overrides *timer.Overrides
	cancel    context.CancelFunc
	keys      timerKeyMap
	help      help.Model

	current  *timer.Event
	finished []domain.PhaseResult
	width    int
	stopping bool
	done     bool
	outcome  *service.Outcome
	err      error
}

func newTimerModel(cfg domain.Config, overrides *timer.Overrides, cancel context.CancelFunc) timerModel {
	return timerModel{
		cfg:       cfg,
		overrides: overrides,
		cancel:    cancel,
		keys:      newTimerKeyMap(),
		help:      help.New(),
	}
}

func (m timerModel) Init() tea.Cmd { return nil }

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			if !m.stopping {
				m.stopping = true
				m.cancel()
			}
		case key.Matches(msg, m.keys.EndWork):
			m.overrides.EndWork()
		case key.Matches(msg, m.keys.EndPause):
			m.overrides.EndPause()
		}
	case timerEventMsg:
		m.applyEvent(timer.Event(msg))
	case runDoneMsg:
		m.done = true
		m.outcome = msg.outcome
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *timerModel) applyEvent(e timer.Event) {
	switch e.Type {
	case timer.EventPhaseStarted, timer.EventTick:
		m.current = &e
	case timer.EventPhaseEnded:
		if e.Result != nil {
			m.finished = append(m.finished, *e.Result)
		}
		m.current = nil
	case timer.EventStopped:
		m.current = nil
	}
}

func (m timerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Pomodoro") + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("work %dm · short %dm · long %dm · long pause every %d",
		m.cfg.WorkMinutes, m.cfg.ShortPauseMinutes, m.cfg.LongPauseMinutes, m.cfg.ShiftsPerCycle)) + "\n\n")

	start := max(len(m.finished)-maxPhaseLines, 0)
	for _, r := range m.finished[start:] {
		b.WriteString(formatter.PhaseStyle(r.Phase, r.PauseKind).Render(formatter.FormatPhaseResult(r)) + "\n")
	}
	if len(m.finished) > 0 {
		b.WriteString("\n")
	}

	switch {
	case m.stopping:
		b.WriteString(formatter.Dim("Stopping...") + "\n")
	case m.current != nil:
		e := m.current
		style := formatter.PhaseStyle(e.Phase, e.PauseKind)
		fmt.Fprintf(&b, "%s  %s / %s\n",
			style.Bold(true).Render(formatter.PhaseTitle(e.Phase, e.PauseKind, e.Number)),
			formatter.Bold(domain.FormatHMS(e.Elapsed)),
			formatter.Dim(domain.FormatHMS(e.Target)))
		b.WriteString(formatter.RenderProgress(e.Progress(), m.barWidth(), style) + "\n")
	default:
		b.WriteString(formatter.Dim("Starting...") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m timerModel) barWidth() int {
	if m.width <= 0 {
		return defaultBarSize
	}
	return min(max(m.width-10, 10), maxBarWidth)
}

// runTUI runs the session under a bubbletea program. The service runs in its
// own goroutine and streams events into the program.
func runTUI(ctx context.Context, sessions service.SessionService, cfg domain.Config, in io.Reader, out io.Writer) (*service.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	overrides := timer.NewOverrides()
	prog := tea.NewProgram(newTimerModel(cfg, overrides, cancel), tea.WithInput(in), tea.WithOutput(out))

	results := make(chan runDoneMsg, 1)
	go func() {
		outcome, err := sessions.Run(ctx, cfg, overrides, timer.ObserverFunc(func(e timer.Event) {
			prog.Send(timerEventMsg(e))
		}))
		done := runDoneMsg{outcome: outcome, err: err}
		results <- done
		prog.Send(done)
	}()

	_, progErr := prog.Run()
	// The program may exit before the run does (e.g. a terminal error).
	cancel()
	done := <-results
	if done.err != nil {
		return done.outcome, done.err
	}
	if progErr != nil && !errors.Is(progErr, tea.ErrInterrupted) {
		return done.outcome, fmt.Errorf("display: %w", progErr)
	}
	return done.outcome, nil
}
