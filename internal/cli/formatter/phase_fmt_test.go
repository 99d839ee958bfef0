package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/alexanderramin/pomodoro/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatPhaseLine(t *testing.T) {
	assert.Equal(t, "\tshift #2: 00:13:07 h",
		FormatPhaseLine(domain.PhaseWork, domain.PauseNone, 2, 13*time.Minute+7*time.Second))
	assert.Equal(t, "\tpause #4 (long): 01:15:00 h",
		FormatPhaseLine(domain.PhasePause, domain.PauseLong, 4, 75*time.Minute))
}

func TestFormatPhaseResult_MarksOverride(t *testing.T) {
	r := domain.PhaseResult{Phase: domain.PhaseWork, Number: 1, Elapsed: 10 * time.Second, EndReason: domain.EndOverride}
	assert.Equal(t, "\tshift #1: 00:00:10 h (ended early)", FormatPhaseResult(r))

	r.EndReason = domain.EndTimeout
	assert.Equal(t, "\tshift #1: 00:00:10 h", FormatPhaseResult(r))
}

func TestFormatSummary(t *testing.T) {
	s := testutil.NewTestSummary(
		testutil.WithPhase(domain.PhaseWork, 50*time.Minute, domain.EndTimeout),
		testutil.WithPhase(domain.PhasePause, 10*time.Minute, domain.EndTimeout),
		testutil.WithPhase(domain.PhaseWork, 20*time.Minute, domain.EndOverride),
	)

	out := FormatSummary(s, true, "20260209_0930 (Monday)", nil, time.Hour)
	assert.Contains(t, out, "01:20:00 h straight")
	assert.Contains(t, out, "2 shift(s), adding up to 01:10:00 h")
	assert.Contains(t, out, "1 pause(s), adding up to 00:10:00 h")
	assert.Contains(t, out, `"20260209_0930 (Monday)"`)

	out = FormatSummary(testutil.NewTestSummary(), false, "", nil, time.Hour)
	assert.Contains(t, out, "0 shift(s)")
	assert.Contains(t, out, "not recorded")

	out = FormatSummary(s, false, "", errors.New("permission denied"), time.Hour)
	assert.Contains(t, out, "Could not record session: permission denied")
	assert.NotContains(t, out, "Less than")
}

func TestFormatSession(t *testing.T) {
	rec := &domain.SessionRecord{
		Summary: testutil.NewTestSummary(
			testutil.WithPhase(domain.PhaseWork, 25*time.Minute, domain.EndTimeout),
			testutil.WithPhase(domain.PhasePause, 2*time.Minute, domain.EndOverride),
		),
		Recorded:   true,
		HistoryKey: "20260209_0930 (Monday)",
	}

	out := FormatSession(rec)
	assert.Contains(t, out, "shift #1: 00:25:00 h")
	assert.Contains(t, out, "pause #1 (short): 00:02:00 h (ended early)")
	assert.Contains(t, out, "work = 25 minute(s)")
	assert.Contains(t, out, "Recorded as:")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, FormatHistory(history.Store{}), "No recorded sessions")

	out := FormatHistory(history.Store{
		"20260210_0800 (Tuesday)": {Worked: "02:00:00", Paused: "00:20:00"},
		"20260209_0930 (Monday)":  {Worked: "01:00:00 h", Paused: "00:00:00 h"},
	})
	assert.Contains(t, out, "SESSION")
	assert.Less(t, strings.Index(out, "Monday"), strings.Index(out, "Tuesday"))
	assert.Contains(t, out, "TOTAL (2)")
	assert.Contains(t, out, "03:00:00")
	assert.Contains(t, out, "00:20:00")
	assert.NotContains(t, out, "left out of the total")

	out = FormatHistory(history.Store{
		"20260209_0930 (Monday)":    {Worked: "01:00:00", Paused: "00:05:00"},
		"20260211_0930 (Wednesday)": {Worked: "??", Paused: "00:05:00"},
	})
	assert.Contains(t, out, "TOTAL (1)")
	assert.Contains(t, out, "1 entr(ies) with unreadable times left out of the total.")
}

func TestFormatStatsFrom(t *testing.T) {
	now := time.Date(2026, 2, 10, 18, 0, 0, 0, time.Local)
	stats := domain.AggregateStats([]*domain.SessionRecord{
		{Summary: testutil.NewWorkedSummary(time.Hour, testutil.WithStartedAt(now.Add(-2*time.Hour))), Recorded: true},
		{Summary: testutil.NewWorkedSummary(30*time.Minute, testutil.WithStartedAt(now.AddDate(0, 0, -1)))},
	}, 7)

	out := FormatStatsFrom(&stats, now)
	assert.Contains(t, out, "LAST 7 DAY(S)")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "01:30:00")

	empty := domain.AggregateStats(nil, 3)
	assert.Contains(t, FormatStatsFrom(&empty, now), "No sessions journaled")
}
