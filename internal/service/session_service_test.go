package service

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pomodoro/internal/domain"
	"github.com/alexanderramin/pomodoro/internal/history"
	"github.com/alexanderramin/pomodoro/internal/repository"
	"github.com/alexanderramin/pomodoro/internal/testutil"
	"github.com/alexanderramin/pomodoro/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mondayMorning = time.Date(2026, 2, 9, 9, 30, 0, 0, time.Local)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

type serviceFixture struct {
	svc         SessionService
	historyPath string
	sessions    *repository.SQLiteSessionRepo
	notifier    *testutil.RecordingNotifier
	observer    *recordingObserver
	logs        *bytes.Buffer
}

func newServiceFixture(t *testing.T, journal bool) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		historyPath: filepath.Join(t.TempDir(), history.DefaultFileName),
		notifier:    &testutil.RecordingNotifier{},
		observer:    &recordingObserver{},
		logs:        &bytes.Buffer{},
	}
	logger := slog.New(slog.NewTextHandler(f.logs, nil))
	opts := timer.Options{
		PollInterval: time.Second,
		Clock:        testutil.NewFakeClock(mondayMorning),
		Notifier:     f.notifier,
		Logger:       logger,
	}
	recorder := NewRecorder(f.historyPath, 0, logger)
	if journal {
		f.sessions = repository.NewSQLiteSessionRepo(testutil.NewTestJournal(t))
		f.svc = NewSessionService(recorder, opts, f.sessions, f.observer)
	} else {
		f.svc = NewSessionService(recorder, opts, nil, f.observer)
	}
	return f
}

// stopAtFirstPause cancels the run as soon as the first pause begins.
func stopAtFirstPause(cancel context.CancelFunc) timer.Observer {
	return timer.ObserverFunc(func(e timer.Event) {
		if e.Type == timer.EventPhaseStarted && e.Phase == domain.PhasePause {
			cancel()
		}
	})
}

func TestRun_HourOfWorkIsRecordedAndJournaled(t *testing.T) {
	f := newServiceFixture(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := domain.Config{WorkMinutes: 60, ShortPauseMinutes: 5, LongPauseMinutes: 15, ShiftsPerCycle: 4}
	outcome, err := f.svc.Run(ctx, cfg, timer.NewOverrides(), stopAtFirstPause(cancel))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, outcome.Summary.WorkTotal)
	assert.Equal(t, 1, outcome.Summary.Shifts)
	assert.True(t, outcome.Recorded)
	assert.Equal(t, "20260209_0930 (Monday)", outcome.Key)
	assert.True(t, outcome.Journaled)
	assert.Equal(t, []string{timer.WorkTimeUpMessage}, f.notifier.Messages())

	st, err := history.Load(f.historyPath)
	require.NoError(t, err)
	assert.Equal(t, history.Entry{Worked: "01:00:00", Paused: "00:00:00"}, st[outcome.Key])

	rec, err := f.svc.GetByID(context.Background(), outcome.Summary.ID)
	require.NoError(t, err)
	assert.True(t, rec.Recorded)
	assert.Equal(t, outcome.Key, rec.HistoryKey)
	require.Len(t, rec.Summary.Phases, 1)
	assert.Equal(t, domain.EndTimeout, rec.Summary.Phases[0].EndReason)

	require.Len(t, f.observer.events, 1)
	assert.Equal(t, "run-session", f.observer.events[0].Name)
	assert.True(t, f.observer.events[0].Success)
	assert.Equal(t, true, f.observer.events[0].Fields["journaled"])
}

func TestRun_ShortSessionIsNotRecorded(t *testing.T) {
	f := newServiceFixture(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcome, err := f.svc.Run(ctx, domain.DefaultConfig(), nil, stopAtFirstPause(cancel))
	require.NoError(t, err)

	assert.Equal(t, 25*time.Minute, outcome.Summary.WorkTotal)
	assert.False(t, outcome.Recorded)
	assert.Empty(t, outcome.Key)
	assert.NoFileExists(t, f.historyPath)

	rec, err := f.svc.GetByID(context.Background(), outcome.Summary.ID)
	require.NoError(t, err)
	assert.False(t, rec.Recorded)
}

func TestRun_InvalidConfigStartsNothing(t *testing.T) {
	f := newServiceFixture(t, true)

	outcome, err := f.svc.Run(context.Background(), domain.Config{WorkMinutes: 0, ShortPauseMinutes: 5, LongPauseMinutes: 15, ShiftsPerCycle: 4}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Nil(t, outcome)
	assert.NoFileExists(t, f.historyPath)
	assert.Empty(t, f.notifier.Messages())
	require.Len(t, f.observer.events, 1)
	assert.False(t, f.observer.events[0].Success)
}

func TestRun_ImmediateCancelReturnsEmptySummary(t *testing.T) {
	f := newServiceFixture(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := f.svc.Run(ctx, domain.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Zero(t, outcome.Summary.Shifts)
	assert.Zero(t, outcome.Summary.Pauses)
	assert.Zero(t, outcome.Summary.Total())
	assert.False(t, outcome.Recorded)
	assert.False(t, outcome.Journaled)
}

func TestRun_JournalFailureDoesNotFailRun(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), history.DefaultFileName)
	journal := testutil.NewTestJournal(t)
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	failing := &testutil.FailingJournal{Journal: journal, Match: "pomodoro_phases", Err: assert.AnError}
	sessions := repository.NewSQLiteSessionRepo(journal)
	svc := NewSessionService(
		NewRecorder(historyPath, 0, logger),
		timer.Options{PollInterval: time.Second, Clock: testutil.NewFakeClock(mondayMorning), Logger: logger},
		repository.NewSQLiteSessionRepo(failing),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := domain.Config{WorkMinutes: 90, ShortPauseMinutes: 5, LongPauseMinutes: 15, ShiftsPerCycle: 4}
	outcome, err := svc.Run(ctx, cfg, nil, stopAtFirstPause(cancel))
	require.NoError(t, err)

	assert.True(t, outcome.Recorded)
	assert.False(t, outcome.Journaled)
	assert.Contains(t, logs.String(), "journal write failed")

	_, err = sessions.GetByID(context.Background(), outcome.Summary.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "session row rolled back with its phases")
}

func TestRun_HistoryWriteFailureIsReportedInOutcome(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	svc := NewSessionService(
		NewRecorder(filepath.Join(blocker, "record_file.txt"), 0, logger),
		timer.Options{PollInterval: time.Second, Clock: testutil.NewFakeClock(mondayMorning), Logger: logger},
		nil,
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := domain.Config{WorkMinutes: 60, ShortPauseMinutes: 5, LongPauseMinutes: 15, ShiftsPerCycle: 4}
	outcome, err := svc.Run(ctx, cfg, nil, stopAtFirstPause(cancel))
	require.NoError(t, err, "a stopped session is never a failed run")
	require.NotNil(t, outcome)
	assert.Equal(t, time.Hour, outcome.Summary.WorkTotal)
	assert.False(t, outcome.Recorded)
	assert.Error(t, outcome.RecordErr)
	assert.Contains(t, logs.String(), "history write failed")
}

func TestJournalQueries_DisabledJournal(t *testing.T) {
	f := newServiceFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.ListRecent(ctx, 7)
	assert.ErrorIs(t, err, ErrJournalDisabled)
	_, err = f.svc.Stats(ctx, 7)
	assert.ErrorIs(t, err, ErrJournalDisabled)
	_, err = f.svc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestStats_AggregatesRecentSessions(t *testing.T) {
	f := newServiceFixture(t, true)
	ctx := context.Background()

	now := time.Now()
	for _, s := range []domain.SessionSummary{
		testutil.NewWorkedSummary(time.Hour, testutil.WithStartedAt(now.Add(-3*time.Hour))),
		testutil.NewWorkedSummary(30*time.Minute, testutil.WithStartedAt(now.Add(-2*time.Hour))),
		testutil.NewWorkedSummary(time.Hour, testutil.WithStartedAt(now.AddDate(0, 0, -30))),
	} {
		require.NoError(t, f.sessions.Create(ctx, &domain.SessionRecord{Summary: s}))
	}

	stats, err := f.svc.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total.Sessions)
	assert.Equal(t, 90*time.Minute, stats.Total.WorkTotal)

	_, err = f.svc.ListRecent(ctx, 0)
	assert.Error(t, err)
}

func TestHistory_ReadsRecordedEntries(t *testing.T) {
	f := newServiceFixture(t, false)
	ctx := context.Background()

	st, err := f.svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, st)

	require.NoError(t, history.Save(f.historyPath, history.Store{"k": {Worked: "01:00:00", Paused: "00:00:00"}}))
	st, err = f.svc.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, st.Keys())
}

func TestForget_RemovesJournaledSession(t *testing.T) {
	f := newServiceFixture(t, true)
	ctx := context.Background()

	summary := testutil.NewWorkedSummary(time.Hour)
	require.NoError(t, f.sessions.Create(ctx, &domain.SessionRecord{Summary: summary}))

	require.NoError(t, f.svc.Forget(ctx, summary.ID))
	_, err := f.svc.GetByID(ctx, summary.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, f.svc.Forget(ctx, summary.ID), repository.ErrNotFound)
	require.Len(t, f.observer.events, 2)
	assert.Equal(t, "forget-session", f.observer.events[1].Name)
	assert.False(t, f.observer.events[1].Success)
}

func TestForget_DisabledJournal(t *testing.T) {
	f := newServiceFixture(t, false)
	assert.ErrorIs(t, f.svc.Forget(context.Background(), "x"), ErrJournalDisabled)
}
