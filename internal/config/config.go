// Package config loads user settings from a YAML file and POMODORO_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/alexanderramin/pomodoro/internal/notify"
	"github.com/alexanderramin/pomodoro/internal/timer"
	"gopkg.in/yaml.v3"
)

const (
	appName          = "pomodoro"
	settingsFileName = "settings.yaml"

	// DefaultRecordThreshold is the minimum worked time for a session to be
	// written to the history file.
	DefaultRecordThreshold = time.Hour
)

// Settings holds everything configurable outside the command line.
type Settings struct {
	// Defaults prefill the interactive prompt.
	Defaults         domain.Config
	RecordThreshold  time.Duration
	PollInterval     time.Duration
	NotifyEnabled    bool
	NotifyCommand    []string
	NotifyTimeout    time.Duration
	NotifyOnOverride bool
	HistoryPath      string
	JournalEnabled   bool
	DBPath           string
	LogFile          string
}

type yamlSettings struct {
	WorkMinutes            int      `yaml:"work_minutes,omitempty"`
	ShortPauseMinutes      int      `yaml:"short_pause_minutes,omitempty"`
	LongPauseMinutes       int      `yaml:"long_pause_minutes,omitempty"`
	ShiftsPerCycle         int      `yaml:"shifts_per_cycle,omitempty"`
	RecordThresholdMinutes int      `yaml:"record_threshold_minutes,omitempty"`
	PollIntervalMs         int      `yaml:"poll_interval_ms,omitempty"`
	Notify                 *bool    `yaml:"notify,omitempty"`
	NotifyCommand          []string `yaml:"notify_command,omitempty"`
	NotifyTimeoutSeconds   int      `yaml:"notify_timeout_seconds,omitempty"`
	NotifyOnOverride       bool     `yaml:"notify_on_override,omitempty"`
	HistoryFile            string   `yaml:"history_file,omitempty"`
	Journal                *bool    `yaml:"journal,omitempty"`
	DBPath                 string   `yaml:"db_path,omitempty"`
	LogFile                string   `yaml:"log_file,omitempty"`
}

// DefaultSettings returns settings with every value at its default. Paths
// are left empty and resolved by Load.
func DefaultSettings() Settings {
	return Settings{
		Defaults:        domain.DefaultConfig(),
		RecordThreshold: DefaultRecordThreshold,
		PollInterval:    timer.DefaultPollInterval,
		NotifyEnabled:   true,
		NotifyCommand:   notify.DefaultCommand(),
		NotifyTimeout:   notify.DefaultTimeout,
		JournalEnabled:  true,
	}
}

// Load reads settings from path (or the default location when path is empty),
// applies POMODORO_* environment overrides and fills in default paths.
// A missing file is not an error. On a parse error the returned settings are
// still usable, built from defaults and the environment.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	var fileErr error
	if path == "" {
		resolved, err := ResolvePath()
		if err != nil {
			fileErr = err
		}
		path = resolved
	}
	if path != "" {
		fileErr = errors.Join(fileErr, applyFile(&settings, path))
	}

	applyEnv(&settings)

	if err := resolveDefaultPaths(&settings); err != nil {
		return settings, errors.Join(fileErr, err)
	}
	return settings, fileErr
}

// ResolvePath returns POMODORO_CONFIG or <UserConfigDir>/pomodoro/settings.yaml.
func ResolvePath() (string, error) {
	if v := os.Getenv("POMODORO_CONFIG"); v != "" {
		return v, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Save writes settings to path as YAML, creating the directory if needed.
func Save(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notifyEnabled := settings.NotifyEnabled
	journalEnabled := settings.JournalEnabled
	fileData := yamlSettings{
		WorkMinutes:            settings.Defaults.WorkMinutes,
		ShortPauseMinutes:      settings.Defaults.ShortPauseMinutes,
		LongPauseMinutes:       settings.Defaults.LongPauseMinutes,
		ShiftsPerCycle:         settings.Defaults.ShiftsPerCycle,
		RecordThresholdMinutes: int(settings.RecordThreshold / time.Minute),
		PollIntervalMs:         int(settings.PollInterval / time.Millisecond),
		Notify:                 &notifyEnabled,
		NotifyCommand:          settings.NotifyCommand,
		NotifyTimeoutSeconds:   int(settings.NotifyTimeout / time.Second),
		NotifyOnOverride:       settings.NotifyOnOverride,
		Journal:                &journalEnabled,
		LogFile:                settings.LogFile,
	}
	// Default locations stay implicit so they keep following the executable
	// and the home directory.
	if def, err := history.DefaultPath(); err != nil || settings.HistoryPath != def {
		fileData.HistoryFile = settings.HistoryPath
	}
	if def, err := DefaultDBPath(); err != nil || settings.DBPath != def {
		fileData.DBPath = settings.DBPath
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// DefaultDBPath returns ~/.pomodoro/pomodoro.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, "."+appName, appName+".db"), nil
}

func applyFile(settings *Settings, path string) error {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return fmt.Errorf("parse settings yaml: %w", err)
	}
	applyYamlSettings(settings, fileData)
	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	d := &settings.Defaults
	d.WorkMinutes = domain.CoalescePositive(fileData.WorkMinutes, d.WorkMinutes)
	d.ShortPauseMinutes = domain.CoalescePositive(fileData.ShortPauseMinutes, d.ShortPauseMinutes)
	d.LongPauseMinutes = domain.CoalescePositive(fileData.LongPauseMinutes, d.LongPauseMinutes)
	d.ShiftsPerCycle = domain.CoalescePositive(fileData.ShiftsPerCycle, d.ShiftsPerCycle)

	if fileData.RecordThresholdMinutes > 0 {
		settings.RecordThreshold = time.Duration(fileData.RecordThresholdMinutes) * time.Minute
	}
	if fileData.PollIntervalMs > 0 {
		settings.PollInterval = time.Duration(fileData.PollIntervalMs) * time.Millisecond
	}
	if fileData.Notify != nil {
		settings.NotifyEnabled = *fileData.Notify
	}
	if len(fileData.NotifyCommand) > 0 {
		settings.NotifyCommand = fileData.NotifyCommand
	}
	if fileData.NotifyTimeoutSeconds > 0 {
		settings.NotifyTimeout = time.Duration(fileData.NotifyTimeoutSeconds) * time.Second
	}
	settings.NotifyOnOverride = fileData.NotifyOnOverride
	if fileData.Journal != nil {
		settings.JournalEnabled = *fileData.Journal
	}
	settings.HistoryPath = domain.CoalesceStr(fileData.HistoryFile, settings.HistoryPath)
	settings.DBPath = domain.CoalesceStr(fileData.DBPath, settings.DBPath)
	settings.LogFile = domain.CoalesceStr(fileData.LogFile, settings.LogFile)
}

func applyEnv(settings *Settings) {
	settings.HistoryPath = domain.CoalesceStr(os.Getenv("POMODORO_HISTORY"), settings.HistoryPath)
	settings.DBPath = domain.CoalesceStr(os.Getenv("POMODORO_DB"), settings.DBPath)
	settings.LogFile = domain.CoalesceStr(os.Getenv("POMODORO_LOG"), settings.LogFile)

	if v := os.Getenv("POMODORO_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.NotifyEnabled = b
		}
	}
	if v := os.Getenv("POMODORO_NOTIFY_COMMAND"); v != "" {
		settings.NotifyCommand = strings.Fields(v)
	}
	if v := os.Getenv("POMODORO_JOURNAL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.JournalEnabled = b
		}
	}
	if v := os.Getenv("POMODORO_POLL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settings.PollInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("POMODORO_RECORD_THRESHOLD_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settings.RecordThreshold = time.Duration(n) * time.Minute
		}
	}
}

func resolveDefaultPaths(settings *Settings) error {
	if settings.HistoryPath == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return err
		}
		settings.HistoryPath = p
	}
	if settings.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return err
		}
		settings.DBPath = p
	}
	return nil
}
