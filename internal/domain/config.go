package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a Config value is not a positive integer.
var ErrInvalidConfig = errors.New("invalid pomodoro config")

const (
	DefaultWorkMinutes       = 25
	DefaultShortPauseMinutes = 5
	DefaultLongPauseMinutes  = 15
	DefaultShiftsPerCycle    = 4
)

// Config holds the four pomodoro parameters. It is built once at startup and
// passed by value to everything that needs it.
type Config struct {
	WorkMinutes       int
	ShortPauseMinutes int
	LongPauseMinutes  int
	ShiftsPerCycle    int
}

// DefaultConfig returns the classic 25/5/15/4 pomodoro.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:       DefaultWorkMinutes,
		ShortPauseMinutes: DefaultShortPauseMinutes,
		LongPauseMinutes:  DefaultLongPauseMinutes,
		ShiftsPerCycle:    DefaultShiftsPerCycle,
	}
}

// Validate checks that every parameter is strictly positive.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"work minutes", c.WorkMinutes},
		{"short pause minutes", c.ShortPauseMinutes},
		{"long pause minutes", c.LongPauseMinutes},
		{"shifts per cycle", c.ShiftsPerCycle},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// WorkDuration is the target length of a work shift.
func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

// PauseDuration is the target length of a pause of the given kind.
func (c Config) PauseDuration(kind PauseKind) time.Duration {
	if kind == PauseLong {
		return time.Duration(c.LongPauseMinutes) * time.Minute
	}
	return time.Duration(c.ShortPauseMinutes) * time.Minute
}
