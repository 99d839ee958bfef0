// Package history persists recorded sessions as a flat JSON object keyed by
// session start time. The whole file is read, updated and written back.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// DefaultFileName is the history file created next to the executable.
const DefaultFileName = "record_file.txt"

const keyLayout = "20060102_1504"

// Entry is the recorded value for one session.
type Entry struct {
	Worked string `json:"worked"`
	Paused string `json:"paused"`
}

// Store maps session keys to entries.
type Store map[string]Entry

// LoadError reports a history file that exists but could not be used. The
// store returned alongside it is empty and safe to use.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading history %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Key returns the history key for a session started at t, for example
// "20260209_0930 (Monday)".
func Key(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(keyLayout), t.Weekday())
}

// EntryFor builds the history entry of a finished session.
func EntryFor(s domain.SessionSummary) Entry {
	return Entry{
		Worked: domain.FormatHMS(s.WorkTotal),
		Paused: domain.FormatHMS(s.PauseTotal),
	}
}

// Put adds the session to the store, replacing an entry with the same key,
// and returns the key used.
func (st Store) Put(s domain.SessionSummary) string {
	key := Key(s.StartedAt)
	st[key] = EntryFor(s)
	return key
}

// Keys returns the store keys in ascending order.
func (st Store) Keys() []string {
	keys := make([]string, 0, len(st))
	for k := range st {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Totals sums worked and paused time over all entries. Entries with a value
// that does not parse as HH:MM:SS are left out and counted in skipped.
func (st Store) Totals() (worked, paused time.Duration, skipped int) {
	for _, e := range st {
		w, werr := domain.ParseHMS(e.Worked)
		p, perr := domain.ParseHMS(e.Paused)
		if werr != nil || perr != nil {
			skipped++
			continue
		}
		worked += w
		paused += p
	}
	return worked, paused, skipped
}

// Load reads the history at path. A missing file yields an empty store and no
// error. An unreadable or corrupt file yields an empty store and a *LoadError.
func Load(path string) (Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Store{}, nil
		}
		return Store{}, &LoadError{Path: path, Err: err}
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Store{}, nil
	}

	var st Store
	if err := json.Unmarshal(raw, &st); err != nil {
		return Store{}, &LoadError{Path: path, Err: err}
	}
	if st == nil {
		st = Store{}
	}
	return st, nil
}

// Save writes the whole store to path as indented JSON, replacing any
// previous content.
func Save(path string, st Store) error {
	if st == nil {
		st = Store{}
	}
	payload, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(payload); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

// DefaultPath returns the history file location next to the running binary.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}
