package formatter

import (
	"fmt"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
)

// FormatHistory renders the history file entries oldest first, followed by
// a total row.
func FormatHistory(st history.Store) string {
	if len(st) == 0 {
		return Dim("No recorded sessions yet.") + "\n"
	}
	rows := make([][]string, 0, len(st))
	for _, k := range st.Keys() {
		e := st[k]
		rows = append(rows, []string{k, e.Worked, e.Paused})
	}
	worked, paused, skipped := st.Totals()
	rows = append(rows, []string{
		Bold(fmt.Sprintf("TOTAL (%d)", len(st)-skipped)),
		Bold(domain.FormatHMS(worked)),
		Bold(domain.FormatHMS(paused)),
	})

	out := Header("History") + "\n" + RenderTable([]string{"SESSION", "WORKED", "PAUSED"}, rows)
	if skipped > 0 {
		out += Dim(fmt.Sprintf("%d entr(ies) with unreadable times left out of the total.", skipped)) + "\n"
	}
	return out
}
