package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// Positional parameter names, in command line order.
var paramFields = [4]string{"work minutes", "short pause minutes", "long pause minutes", "shifts per cycle"}

// Prompt titles, in the same order.
var paramTitles = [4]string{"Work (minutes)", "Short pause (minutes)", "Long pause (minutes)", "Shifts per cycle"}

func defaultValues(defaults domain.Config) [4]int {
	return [4]int{defaults.WorkMinutes, defaults.ShortPauseMinutes, defaults.LongPauseMinutes, defaults.ShiftsPerCycle}
}

// parseParams turns four strings into a Config. A blank value takes the
// matching field from defaults.
func parseParams(values [4]string, defaults domain.Config) (domain.Config, error) {
	fallback := defaultValues(defaults)
	var parsed [4]int
	for i, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			parsed[i] = fallback[i]
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Config{}, &ParseError{Field: paramFields[i], Value: raw, Err: err}
		}
		parsed[i] = v
	}

	cfg := domain.Config{
		WorkMinutes:       parsed[0],
		ShortPauseMinutes: parsed[1],
		LongPauseMinutes:  parsed[2],
		ShiftsPerCycle:    parsed[3],
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
