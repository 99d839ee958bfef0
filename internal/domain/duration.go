package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatHMS renders d as HH:MM:SS from its total length. Hours keep counting
// past 24, so a day and a half reads "36:00:00". Negative values render as zero.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseHMS reads a value written by FormatHMS. A trailing " h" unit, as
// printed on screen and found in hand-edited history files, is accepted.
func ParseHMS(s string) (time.Duration, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), " h")
	var h, m, sec int64
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("parsing duration %q: out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
