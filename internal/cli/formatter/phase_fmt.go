package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// FormatPhaseLine renders the console line for a phase, e.g.
// "\tshift #2: 00:13:07 h" or "\tpause #4 (long): 00:15:00 h". It carries no
// styling so it can be rewritten in place with a carriage return.
func FormatPhaseLine(phase domain.Phase, kind domain.PauseKind, number int, elapsed time.Duration) string {
	label := fmt.Sprintf("%s #%d", PhaseName(phase), number)
	if phase == domain.PhasePause && kind != domain.PauseNone {
		label += fmt.Sprintf(" (%s)", kind)
	}
	return fmt.Sprintf("\t%s: %s", label, Clock(elapsed))
}

// FormatPhaseResult renders the finalized line for a completed phase. A
// manually ended phase is marked.
func FormatPhaseResult(r domain.PhaseResult) string {
	line := FormatPhaseLine(r.Phase, r.PauseKind, r.Number, r.Elapsed)
	if r.EndReason == domain.EndOverride {
		line += " (ended early)"
	}
	return line
}

// FormatConfig renders the parameters a session runs with.
func FormatConfig(cfg domain.Config) string {
	return fmt.Sprintf("\twork = %d minute(s)\n\tshort pause = %d minute(s)\n\tlong pause = %d minute(s)\n\tshifts per cycle = %d",
		cfg.WorkMinutes, cfg.ShortPauseMinutes, cfg.LongPauseMinutes, cfg.ShiftsPerCycle)
}
