package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/db"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/models"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	return logger, &buf
}

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Initialize())
	t.Cleanup(func() { _ = db.Close() })
}

func TestAssignmentProducesNotification(t *testing.T) {
	setup(t)
	logger, _ := newTestLogger()
	notifications := NewLog(logger)
	notifications.now = func() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }

	ana := models.Assignee{ID: "user-ana", Name: "Ana"}
	session := board.NewSession(board.Options{
		Roster:   board.StaticRoster{ana},
		Notifier: notifications,
	})
	task, err := session.AddTask("column-1", "Write spec")
	require.NoError(t, err)
	require.NoError(t, session.UpdateTaskAssignee(task.ID, &ana))

	entries, err := notifications.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `Ana was assigned to task "Write spec"`, entries[0].Message)
	assert.Equal(t, "2026-05-04T12:00:00.000Z", entries[0].Timestamp())
	assert.True(t, entries[0].Unread)
	assert.Equal(t, []string{`Ana was assigned to task "Write spec"`}, notifications.Drain())
	assert.Empty(t, notifications.Drain())
}

func TestListNewestFirstAndMarkRead(t *testing.T) {
	setup(t)
	logger, _ := newTestLogger()
	notifications := NewLog(logger)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	notifications.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	notifications.Notify("first")
	notifications.Notify("second")
	assert.Equal(t, 2, notifications.Unread())

	notifications.MarkRead()
	notifications.Notify("third")

	entries, err := notifications.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.True(t, entries[0].Unread)
	assert.Equal(t, "first", entries[2].Message)
	assert.False(t, entries[2].Unread)
	assert.Greater(t, entries[0].ID, entries[1].ID)
	assert.Greater(t, entries[1].ID, entries[2].ID)
	assert.Equal(t, 1, notifications.Unread())
}

func TestNotifyWithoutStoreLogsWarning(t *testing.T) {
	require.NoError(t, db.Close())
	logger, buf := newTestLogger()
	notifications := NewLog(logger)

	notifications.Notify("lost")

	assert.Contains(t, buf.String(), "notification dropped")
	assert.Empty(t, notifications.Drain())
}

func TestAge(t *testing.T) {
	logger, _ := newTestLogger()
	notifications := NewLog(logger)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	notifications.now = func() time.Time { return now }

	n := models.Notification{CreatedAt: now.Add(-5 * time.Minute)}
	assert.Equal(t, "5 minutes", notifications.Age(n, locale.New("en")))
	assert.Equal(t, "5 minutos", notifications.Age(n, locale.New("pt-BR")))
}

func TestJournalRecordsBoardEvents(t *testing.T) {
	setup(t)
	logger, _ := newTestLogger()
	journal := NewJournal(logger)
	session := board.NewSession(board.Options{Journal: journal})

	task, err := session.AddTask("column-1", "a")
	require.NoError(t, err)
	require.NoError(t, session.MoveTask(task.ID, "column-1", "column-3"))
	session.AddColumn()

	history, err := journal.Task(task.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, string(board.EventTaskAdded), history[0].EventType)
	assert.Equal(t, string(board.EventTaskMoved), history[1].EventType)
	assert.Equal(t, "column-3", history[1].ColumnID)

	recent, err := journal.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, string(board.EventColumnAdded), recent[0].EventType)
}
