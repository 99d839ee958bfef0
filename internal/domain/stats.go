package domain

import (
	"sort"
	"time"
)

// DayStats aggregates the journaled sessions started on one local calendar day.
type DayStats struct {
	Day        time.Time
	Sessions   int
	Recorded   int
	WorkTotal  time.Duration
	PauseTotal time.Duration
	Shifts     int
	Pauses     int
}

// JournalStats aggregates journaled sessions over a window of days.
type JournalStats struct {
	Days  int
	Total DayStats
	ByDay []DayStats
}

// AggregateStats folds records into per-day totals, newest day first.
func AggregateStats(records []*SessionRecord, days int) JournalStats {
	stats := JournalStats{Days: days}
	byDay := make(map[time.Time]*DayStats)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		start := rec.Summary.StartedAt
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		ds, ok := byDay[day]
		if !ok {
			ds = &DayStats{Day: day}
			byDay[day] = ds
		}
		ds.add(rec)
		stats.Total.add(rec)
	}

	stats.ByDay = make([]DayStats, 0, len(byDay))
	for _, ds := range byDay {
		stats.ByDay = append(stats.ByDay, *ds)
	}
	sort.Slice(stats.ByDay, func(i, j int) bool {
		return stats.ByDay[i].Day.After(stats.ByDay[j].Day)
	})
	return stats
}

func (d *DayStats) add(rec *SessionRecord) {
	d.Sessions++
	if rec.Recorded {
		d.Recorded++
	}
	d.WorkTotal += rec.Summary.WorkTotal
	d.PauseTotal += rec.Summary.PauseTotal
	d.Shifts += rec.Summary.Shifts
	d.Pauses += rec.Summary.Pauses
}
