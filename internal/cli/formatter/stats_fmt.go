package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// FormatStats renders per-day journal totals followed by the window total.
func FormatStats(stats *domain.JournalStats) string {
	return FormatStatsFrom(stats, time.Now())
}

// FormatStatsFrom is FormatStats with day labels relative to now.
func FormatStatsFrom(stats *domain.JournalStats, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Last %d day(s)", stats.Days)) + "\n")
	if stats.Total.Sessions == 0 {
		b.WriteString(Dim("No sessions journaled in this window.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(stats.ByDay)+1)
	for _, d := range stats.ByDay {
		rows = append(rows, statsRow(HumanDateFrom(d.Day, now), d))
	}
	rows = append(rows, statsRow(Bold("Total"), stats.Total))
	b.WriteString(RenderTable([]string{"DAY", "SESSIONS", "SHIFTS", "WORKED", "PAUSED", "RECORDED"}, rows))
	return b.String()
}

func statsRow(label string, d domain.DayStats) []string {
	return []string{
		label,
		strconv.Itoa(d.Sessions),
		strconv.Itoa(d.Shifts),
		domain.FormatHMS(d.WorkTotal),
		domain.FormatHMS(d.PauseTotal),
		strconv.Itoa(d.Recorded),
	}
}
