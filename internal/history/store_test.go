package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pomodoro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	// 2026-02-09 is a Monday.
	monday := time.Date(2026, 2, 9, 9, 5, 59, 0, time.Local)
	tests := []struct {
		offsetDays int
		want       string
	}{
		{0, "20260209_0905 (Monday)"},
		{1, "20260210_0905 (Tuesday)"},
		{2, "20260211_0905 (Wednesday)"},
		{3, "20260212_0905 (Thursday)"},
		{4, "20260213_0905 (Friday)"},
		{5, "20260214_0905 (Saturday)"},
		{6, "20260215_0905 (Sunday)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(monday.AddDate(0, 0, tt.offsetDays)))
		})
	}
}

func TestEntryFor(t *testing.T) {
	s := testutil.NewWorkedSummary(75*time.Minute + 30*time.Second)
	s.PauseTotal = 20 * time.Minute

	assert.Equal(t, Entry{Worked: "01:15:30", Paused: "00:20:00"}, EntryFor(s))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NotNil(t, st)
	assert.Empty(t, st)
}

func TestLoad_CorruptFileIsEmptyWithLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record_file.txt")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st, err := Load(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
	assert.NotNil(t, st)
	assert.Empty(t, st)
}

func TestLoad_EmptyAndNullFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"empty": "", "blank": "  \n", "null": "null"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		st, err := Load(path)
		require.NoError(t, err, name)
		assert.NotNil(t, st, name)
		assert.Empty(t, st, name)
	}
}

func TestLoad_DirectoryIsLoadError(t *testing.T) {
	st, err := Load(t.TempDir())
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Empty(t, st)
}

func TestSaveLoad_RoundTripKeepsPriorEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record_file.txt")
	prior := Store{
		"20260101_0800 (Thursday)": {Worked: "02:00:00 h", Paused: "00:30:00 h"},
		"20260105_1400 (Monday)":   {Worked: "01:10:00", Paused: "00:15:00"},
	}
	require.NoError(t, Save(path, prior))

	st, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, prior, st)

	summary := testutil.NewWorkedSummary(90 * time.Minute)
	key := st.Put(summary)
	require.NoError(t, Save(path, st))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded, 3)
	for k, v := range prior {
		assert.Equal(t, v, reloaded[k])
	}
	assert.Equal(t, Entry{Worked: "01:30:00", Paused: "00:00:00"}, reloaded[key])
}

func TestSave_WritesIndentedJSONAndNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "record_file.txt")
	require.NoError(t, Save(path, Store{"k": {Worked: "01:00:00", Paused: "00:05:00"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"k\": {")
	assert.Contains(t, string(raw), `"worked": "01:00:00"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_PutOverwritesSameKey(t *testing.T) {
	st := Store{}
	first := testutil.NewWorkedSummary(time.Hour)
	second := testutil.NewWorkedSummary(2 * time.Hour)

	k1 := st.Put(first)
	k2 := st.Put(second)

	assert.Equal(t, k1, k2)
	assert.Len(t, st, 1)
	assert.Equal(t, "02:00:00", st[k1].Worked)
}

func TestStore_Keys(t *testing.T) {
	st := Store{"b": {}, "a": {}, "c": {}}
	assert.Equal(t, []string{"a", "b", "c"}, st.Keys())
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(path))
}

func TestStore_Totals(t *testing.T) {
	st := Store{
		"20260101_0800 (Thursday)": {Worked: "02:00:00 h", Paused: "00:30:00 h"},
		"20260105_1400 (Monday)":   {Worked: "01:10:05", Paused: "00:15:00"},
		"20260106_0900 (Tuesday)":  {Worked: "a while", Paused: "00:01:00"},
	}

	worked, paused, skipped := st.Totals()
	assert.Equal(t, 3*time.Hour+10*time.Minute+5*time.Second, worked)
	assert.Equal(t, 45*time.Minute, paused)
	assert.Equal(t, 1, skipped)
}
