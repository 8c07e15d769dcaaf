package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/db"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/models"
	"github.com/balkashynov/fluxo/internal/notify"
)

func newTestConsole(t *testing.T, lang string) (*Console, *bytes.Buffer) {
	t.Helper()
	require.NoError(t, db.Initialize())
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	loc := locale.New(lang)
	texts := board.Texts{
		SeedColumnTitles: loc.SeedColumnTitles(),
		NewColumnTitle:   loc.NewColumnTitle(),
		Assigned:         loc.Assigned,
	}
	notifications := notify.NewLog(logger)
	journal := notify.NewJournal(logger)
	session := board.NewSession(board.Options{
		Roster:   board.StaticRoster{{ID: "user-ana", Name: "Ana"}},
		Notifier: notifications,
		Journal:  journal,
		Logger:   logger,
		Texts:    &texts,
	})

	var out bytes.Buffer
	c := New(Deps{
		Session:       session,
		Notifications: notifications,
		Journal:       journal,
		Locale:        loc,
		Out:           &out,
		Logger:        logger,
	})
	return c, &out
}

func run(t *testing.T, c *Console, script string) {
	t.Helper()
	require.NoError(t, c.Run(context.Background(), strings.NewReader(script)))
}

func TestAddDragDropShow(t *testing.T) {
	c, out := newTestConsole(t, "en")

	run(t, c, `add column-1 Write spec
add column-1 Review spec
drag task-1 column-1
drop column-2
show
`)

	assert.Equal(t, `Added task-1 to column-1
Added task-2 to column-1
column-1   To Do (1)
  task-2   Review spec
column-2   In Progress (1)
  task-1   Write spec
column-3   Done (0)
`, out.String())
}

func TestMentionAssignsAndNotifies(t *testing.T) {
	c, out := newTestConsole(t, "en")

	run(t, c, "add column-1 Write spec @ana\nnotifications\n")

	text := out.String()
	assert.Contains(t, text, "🔔 Ana was assigned to task \"Write spec\"")
	assert.Contains(t, text, "* 1 ")

	task, ok := c.session.Task("task-1")
	require.True(t, ok)
	assert.Equal(t, "Write spec", task.Content)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "user-ana", task.Assignee.ID)
}

func TestDeletionFlow(t *testing.T) {
	c, out := newTestConsole(t, "en")

	run(t, c, `add column-1 a
rm-column column-1
cancel
rm-task task-1 column-1
confirm
confirm
`)

	text := out.String()
	assert.Contains(t, text, `Delete Column: Are you sure you want to delete "To Do"? This action cannot be undone.`)
	assert.Contains(t, text, `Delete Task: Are you sure you want to delete "a"?`)
	assert.Contains(t, text, "Error: "+board.ErrNoPendingDeletion.Error())

	_, ok := c.session.Column("column-1")
	assert.True(t, ok)
	_, ok = c.session.Task("task-1")
	assert.False(t, ok)
}

func TestErrorsDoNotStopTheLoop(t *testing.T) {
	c, out := newTestConsole(t, "en")

	run(t, c, `drop column-2
edit task-9 hello
bogus
add column-1
add column-1 still works
quit
add column-1 never runs
`)

	text := out.String()
	assert.Contains(t, text, "Error: "+board.ErrInvalidDrag.Error())
	assert.Contains(t, text, `Error: task "task-9": not found`)
	assert.Contains(t, text, `Error: unknown command "bogus"`)
	assert.Contains(t, text, "Error: card content is required")
	assert.Contains(t, text, "Added task-1 to column-1")
	assert.NotContains(t, text, "task-2")
}

func TestHistoryAndJSON(t *testing.T) {
	c, out := newTestConsole(t, "en")
	run(t, c, "add column-1 a\nedit task-1 b\n")
	out.Reset()

	require.NoError(t, c.Exec("history task-1"))
	assert.Contains(t, out.String(), "task_added")
	assert.Contains(t, out.String(), "task_edited")

	out.Reset()
	require.NoError(t, c.Exec("json"))
	var snapshot models.BoardSnapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snapshot))
	assert.Equal(t, "b", snapshot.Tasks["task-1"].Content)
	assert.Equal(t, []string{"column-1", "column-2", "column-3"}, snapshot.ColumnOrder)
}

func TestPortugueseBoard(t *testing.T) {
	c, out := newTestConsole(t, "pt-BR")

	run(t, c, "column\nnotifications\nshow\n")

	text := out.String()
	assert.Contains(t, text, "Added column-4 (Nova Coluna)")
	assert.Contains(t, text, "Nenhuma notificação ainda")
	assert.Contains(t, text, "column-1   A Fazer (0)")
	assert.Contains(t, text, "column-3   Concluído (0)")
}

func TestRunStopsWhenCancelled(t *testing.T) {
	c, out := newTestConsole(t, "en")
	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, in) }()

	// nothing is ever written; Run must not wait for a line
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
	assert.Empty(t, out.String())
}
