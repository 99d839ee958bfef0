package testutil

import (
	"testing"

	"github.com/alexanderramin/pomodoro/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestJournal opens an in-memory journal with the schema applied. It is
// closed when the test completes.
func NewTestJournal(t *testing.T) *db.SQLiteJournal {
	t.Helper()
	journal, err := db.OpenJournal(db.MemoryPath)
	require.NoError(t, err, "opening test journal")
	t.Cleanup(func() {
		journal.Close()
	})
	return journal
}
