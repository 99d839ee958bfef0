package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// FormatSummary renders the end-of-session report: combined time, shift and
// pause counts with their totals, and whether the history file was updated.
// recordErr is the history write failure of a qualifying session, if any.
func FormatSummary(s domain.SessionSummary, recorded bool, key string, recordErr error, threshold time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "In total you were working for %s straight!\n", Bold(Clock(s.Total())))
	fmt.Fprintf(&b, "\t%d shift(s), adding up to %s\n", s.Shifts, Clock(s.WorkTotal))
	fmt.Fprintf(&b, "\t%d pause(s), adding up to %s\n", s.Pauses, Clock(s.PauseTotal))
	b.WriteString("\n")
	switch {
	case recorded:
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Session recorded as %q.", key)))
	case recordErr != nil:
		b.WriteString(StyleRed.Render("Could not record session: " + recordErr.Error()))
	default:
		b.WriteString(Dim(fmt.Sprintf("Less than %s of work; session not recorded.", Clock(threshold))))
	}
	return RenderBox("Done", b.String())
}

// FormatSession renders one journaled session with its phase lines.
func FormatSession(rec *domain.SessionRecord) string {
	s := rec.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Session:"), s.ID)
	fmt.Fprintf(&b, "%s %s - %s\n", Dim("Time:"), s.StartedAt.Format("Mon Jan 2 2006 15:04"), s.EndedAt.Format("15:04"))
	fmt.Fprintf(&b, "%s\n%s\n\n", Dim("Parameters:"), FormatConfig(s.Config))
	if len(s.Phases) == 0 {
		b.WriteString(Dim("No completed phases.") + "\n")
	}
	for _, p := range s.Phases {
		b.WriteString(PhaseStyle(p.Phase, p.PauseKind).Render(FormatPhaseResult(p)) + "\n")
	}
	fmt.Fprintf(&b, "\n%d shift(s) %s, %d pause(s) %s",
		s.Shifts, Clock(s.WorkTotal), s.Pauses, Clock(s.PauseTotal))
	if rec.Recorded {
		fmt.Fprintf(&b, "\n%s %s", Dim("Recorded as:"), rec.HistoryKey)
	}
	return RenderBox("Session", b.String())
}
