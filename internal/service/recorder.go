package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/pomodoro/internal/config"
	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
)

// RecordResult reports what Recorder.Record did.
type RecordResult struct {
	Recorded bool
	Key      string
}

// Recorder persists qualifying session summaries to the history file.
type Recorder struct {
	Path      string
	Threshold time.Duration
	Logger    *slog.Logger
}

// NewRecorder creates a Recorder. A non-positive threshold selects
// config.DefaultRecordThreshold.
func NewRecorder(path string, threshold time.Duration, logger *slog.Logger) *Recorder {
	if threshold <= 0 {
		threshold = config.DefaultRecordThreshold
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{Path: path, Threshold: threshold, Logger: logger}
}

// Qualifies reports whether summary meets the recording threshold.
func (r *Recorder) Qualifies(summary domain.SessionSummary) bool {
	return summary.WorkTotal >= r.Threshold
}

// Record merges summary into the history file when it qualifies. Sessions
// below the threshold never touch the file. An unreadable history file is
// logged and replaced by an empty store.
func (r *Recorder) Record(ctx context.Context, summary domain.SessionSummary) (RecordResult, error) {
	if !r.Qualifies(summary) {
		return RecordResult{}, nil
	}

	store, err := history.Load(r.Path)
	if err != nil {
		var loadErr *history.LoadError
		if !errors.As(err, &loadErr) {
			return RecordResult{}, err
		}
		r.Logger.WarnContext(ctx, "history file unreadable, starting empty",
			"path", loadErr.Path,
			"error", loadErr.Err.Error(),
		)
	}

	key := store.Put(summary)
	if err := history.Save(r.Path, store); err != nil {
		return RecordResult{}, fmt.Errorf("recording session %s: %w", key, err)
	}
	r.Logger.InfoContext(ctx, "session recorded", "path", r.Path, "key", key)
	return RecordResult{Recorded: true, Key: key}, nil
}
