// Package app wires settings into a ready-to-use session service.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pomodoro/internal/config"
	"github.com/alexanderramin/pomodoro/internal/db"
	"github.com/alexanderramin/pomodoro/internal/notify"
	"github.com/alexanderramin/pomodoro/internal/repository"
	"github.com/alexanderramin/pomodoro/internal/service"
	"github.com/alexanderramin/pomodoro/internal/timer"
)

// Mode is how a session is displayed. It decides where logs may go.
type Mode int

const (
	// ModeTUI owns the terminal; nothing may be written to stderr.
	ModeTUI Mode = iota
	// ModePlain writes progress lines to stdout; warnings go to stderr.
	ModePlain
)

// Runtime holds the services for one command invocation.
type Runtime struct {
	Sessions service.SessionService
	Logger   *slog.Logger
	// Journaled reports whether the journal database is open.
	Journaled bool

	closers []io.Closer
}

// Close releases the database and log file.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	return errors.Join(errs...)
}

// Open builds a Runtime from settings. A journal database that cannot be
// opened is logged and the runtime continues without it.
func Open(settings config.Settings, mode Mode, stderr io.Writer) (*Runtime, error) {
	rt := &Runtime{}

	logger, logCloser, err := NewLogger(settings, mode, stderr)
	if err != nil {
		return nil, err
	}
	if logCloser != nil {
		rt.closers = append(rt.closers, logCloser)
	}
	rt.Logger = logger

	var notifier timer.Notifier = notify.Nop{}
	if settings.NotifyEnabled {
		notifier = notify.NewCommandNotifier(settings.NotifyCommand, settings.NotifyTimeout, logger)
	}
	timerOptions := timer.Options{
		PollInterval:     settings.PollInterval,
		NotifyOnOverride: settings.NotifyOnOverride,
		Notifier:         notifier,
		Logger:           logger,
	}
	recorder := service.NewRecorder(settings.HistoryPath, settings.RecordThreshold, logger)

	var sessions repository.SessionRepo
	if settings.JournalEnabled && settings.DBPath != "" {
		journal, err := db.OpenJournal(settings.DBPath)
		if err != nil {
			logger.Warn("journal unavailable, continuing without it", "path", settings.DBPath, "error", err.Error())
		} else {
			rt.closers = append(rt.closers, journal)
			sessions = repository.NewSQLiteSessionRepo(journal)
			rt.Journaled = true
		}
	}

	rt.Sessions = service.NewSessionService(recorder, timerOptions, sessions, service.NewSlogUseCaseObserver(logger))
	return rt, nil
}

// NewLogger returns the process logger. With a log file configured every
// mode logs there at info level. Otherwise plain mode logs warnings to stderr
// and the TUI discards logs. The returned closer is nil when no file was
// opened.
func NewLogger(settings config.Settings, mode Mode, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	if settings.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})), f, nil
	}
	if mode == ModePlain && stderr != nil {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})), nil, nil
	}
	return slog.New(slog.DiscardHandler), nil, nil
}
