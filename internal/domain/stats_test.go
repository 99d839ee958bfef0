package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(start time.Time, work, pause time.Duration, shifts int, recorded bool) *SessionRecord {
	return &SessionRecord{
		Summary: SessionSummary{
			StartedAt:  start,
			WorkTotal:  work,
			PauseTotal: pause,
			Shifts:     shifts,
			Pauses:     shifts - 1,
		},
		Recorded: recorded,
	}
}

func TestAggregateStats(t *testing.T) {
	mon := time.Date(2026, 2, 9, 9, 0, 0, 0, time.Local)
	records := []*SessionRecord{
		record(mon, time.Hour, 10*time.Minute, 2, true),
		record(mon.Add(5*time.Hour), 30*time.Minute, 0, 1, false),
		record(mon.AddDate(0, 0, 1), 2*time.Hour, 20*time.Minute, 4, true),
		nil,
	}

	stats := AggregateStats(records, 7)

	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 3, stats.Total.Sessions)
	assert.Equal(t, 2, stats.Total.Recorded)
	assert.Equal(t, 3*time.Hour+30*time.Minute, stats.Total.WorkTotal)
	assert.Equal(t, 30*time.Minute, stats.Total.PauseTotal)
	assert.Equal(t, 7, stats.Total.Shifts)
	assert.Equal(t, 4, stats.Total.Pauses)

	require.Len(t, stats.ByDay, 2)
	assert.Equal(t, 10, stats.ByDay[0].Day.Day(), "newest day first")
	assert.Equal(t, 1, stats.ByDay[0].Sessions)
	assert.Equal(t, 2, stats.ByDay[1].Sessions)
	assert.Equal(t, 90*time.Minute, stats.ByDay[1].WorkTotal)
}

func TestAggregateStats_Empty(t *testing.T) {
	stats := AggregateStats(nil, 3)
	assert.Equal(t, 0, stats.Total.Sessions)
	assert.Empty(t, stats.ByDay)
}
