package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/cli/formatter"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/service"
	"github.com/alexanderramin/pomodoro/internal/timer"
)

const plainControls = "controls: p+Enter ends work, w+Enter ends pause, q+Enter or ctrl+c stops"

// lineRenderer prints one carriage-return updated line per phase. It is
// called from the timer goroutine only.
type lineRenderer struct {
	w       io.Writer
	lastSec int64
}

func newLineRenderer(w io.Writer) *lineRenderer {
	return &lineRenderer{w: w, lastSec: -1}
}

func (r *lineRenderer) OnEvent(e timer.Event) {
	switch e.Type {
	case timer.EventPhaseStarted:
		r.lastSec = 0
		fmt.Fprint(r.w, "\r"+formatter.FormatPhaseLine(e.Phase, e.PauseKind, e.Number, 0))
	case timer.EventTick:
		sec := int64(e.Elapsed / time.Second)
		if sec == r.lastSec {
			return
		}
		r.lastSec = sec
		fmt.Fprint(r.w, "\r"+formatter.FormatPhaseLine(e.Phase, e.PauseKind, e.Number, e.Elapsed))
	case timer.EventPhaseEnded:
		if e.Result != nil {
			fmt.Fprintln(r.w, "\r"+formatter.FormatPhaseResult(*e.Result))
		}
	case timer.EventStopped:
		fmt.Fprintln(r.w)
	}
}

// readControls maps input lines to overrides until lines is exhausted or a
// stop is requested.
func readControls(lines *bufio.Scanner, overrides *timer.Overrides, stop context.CancelFunc) {
	for lines.Scan() {
		switch strings.ToLower(strings.TrimSpace(lines.Text())) {
		case "p":
			overrides.EndWork()
		case "w":
			overrides.EndPause()
		case "q":
			stop()
			return
		}
	}
}

// runPlain runs the session with line output, for pipes and dumb terminals.
func runPlain(ctx context.Context, sessions service.SessionService, cfg domain.Config, lines *bufio.Scanner, out io.Writer) (*service.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintf(out, "%s\n%s\n\n%s\n\n", formatter.Bold("pomodoro:"), formatter.FormatConfig(cfg), formatter.Dim(plainControls))

	overrides := timer.NewOverrides()
	if lines != nil {
		go readControls(lines, overrides, cancel)
	}
	return sessions.Run(ctx, cfg, overrides, newLineRenderer(out))
}
