package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/fluxo/internal/models"
)

var (
	ana   = models.Assignee{ID: "user-ana", Name: "Ana"}
	bruno = models.Assignee{ID: "user-bruno", Name: "Bruno"}
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func newTestSession(t *testing.T) (*Session, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	session := NewSession(Options{
		Roster:   StaticRoster{ana, bruno},
		Notifier: notifier,
	})
	return session, notifier
}

func requireIntegrity(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.CheckIntegrity())
}

func TestSeedBoard(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, []string{"column-1", "column-2", "column-3"}, s.ColumnOrder())
	for id, title := range map[string]string{"column-1": "To Do", "column-2": "In Progress", "column-3": "Done"} {
		column, ok := s.Column(id)
		require.True(t, ok, id)
		assert.Equal(t, title, column.Title)
		assert.Empty(t, column.TaskIDs)
	}
	assert.Empty(t, s.Snapshot().Tasks)
	requireIntegrity(t, s.Engine)
}

func TestSeedBoardUsesTexts(t *testing.T) {
	texts := DefaultTexts()
	texts.SeedColumnTitles = [3]string{"A Fazer", "Em Andamento", "Concluído"}
	texts.NewColumnTitle = "Nova Coluna"
	e := NewEngine(Options{Texts: &texts})

	column, _ := e.Column("column-1")
	assert.Equal(t, "A Fazer", column.Title)
	assert.Equal(t, "Nova Coluna", e.AddColumn().Title)
}

func TestAddTaskAppendsToColumn(t *testing.T) {
	s, _ := newTestSession(t)

	first, err := s.AddTask("column-1", "Write spec")
	require.NoError(t, err)
	second, err := s.AddTask("column-1", "Review spec")
	require.NoError(t, err)

	column, _ := s.Column("column-1")
	assert.Equal(t, []string{first.ID, second.ID}, column.TaskIDs)
	assert.Equal(t, second.ID, column.TaskIDs[len(column.TaskIDs)-1])

	owner, ok := s.OwnerOf(first.ID)
	require.True(t, ok)
	assert.Equal(t, "column-1", owner)
	requireIntegrity(t, s.Engine)
}

func TestAddTaskUnknownColumn(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddTask("column-99", "Lost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.Snapshot().Tasks)
}

func TestTaskIDsNeverCollide(t *testing.T) {
	s, _ := newTestSession(t)

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		task, err := s.AddTask("column-1", "x")
		require.NoError(t, err)
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	requireIntegrity(t, s.Engine)
}

func TestUpdateTaskContent(t *testing.T) {
	s, _ := newTestSession(t)
	task, _ := s.AddTask("column-1", "Draft")

	require.NoError(t, s.UpdateTaskContent(task.ID, "  Final  "))
	got, _ := s.Task(task.ID)
	assert.Equal(t, "Final", got.Content)

	err := s.UpdateTaskContent(task.ID, "   ")
	assert.ErrorIs(t, err, ErrNoOpEdit)
	got, _ = s.Task(task.ID)
	assert.Equal(t, "Final", got.Content)

	assert.ErrorIs(t, s.UpdateTaskContent("task-404", "x"), ErrNotFound)
}

func TestUpdateColumnTitle(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.UpdateColumnTitle("column-2", "Doing"))
	column, _ := s.Column("column-2")
	assert.Equal(t, "Doing", column.Title)

	assert.ErrorIs(t, s.UpdateColumnTitle("column-2", ""), ErrNoOpEdit)
	column, _ = s.Column("column-2")
	assert.Equal(t, "Doing", column.Title)

	assert.ErrorIs(t, s.UpdateColumnTitle("column-9", "x"), ErrNotFound)
}

func TestUpdateTaskAssigneeNotifications(t *testing.T) {
	s, notifier := newTestSession(t)
	task, _ := s.AddTask("column-1", "Write spec")

	require.NoError(t, s.UpdateTaskAssignee(task.ID, &ana))
	assert.Equal(t, []string{`Ana was assigned to task "Write spec"`}, notifier.messages)

	// same member again: silent
	require.NoError(t, s.UpdateTaskAssignee(task.ID, &ana))
	assert.Len(t, notifier.messages, 1)

	// different member: one more
	require.NoError(t, s.UpdateTaskAssignee(task.ID, &bruno))
	assert.Len(t, notifier.messages, 2)
	got, _ := s.Task(task.ID)
	require.NotNil(t, got.Assignee)
	assert.Equal(t, bruno, *got.Assignee)

	// clearing: silent, field removed
	require.NoError(t, s.UpdateTaskAssignee(task.ID, nil))
	assert.Len(t, notifier.messages, 2)
	got, _ = s.Task(task.ID)
	assert.Nil(t, got.Assignee)
}

func TestUpdateTaskAssigneeErrors(t *testing.T) {
	s, notifier := newTestSession(t)
	task, _ := s.AddTask("column-1", "Write spec")

	assert.ErrorIs(t, s.UpdateTaskAssignee("task-404", &ana), ErrNotFound)

	stranger := models.Assignee{ID: "user-x", Name: "Stranger"}
	assert.ErrorIs(t, s.UpdateTaskAssignee(task.ID, &stranger), ErrUnknownMember)
	assert.Empty(t, notifier.messages)
}

func TestUpdateTaskAssigneeUsesRosterName(t *testing.T) {
	s, notifier := newTestSession(t)
	task, _ := s.AddTask("column-1", "Write spec")

	require.NoError(t, s.UpdateTaskAssignee(task.ID, &models.Assignee{ID: ana.ID}))
	got, _ := s.Task(task.ID)
	assert.Equal(t, "Ana", got.Assignee.Name)
	assert.Equal(t, []string{`Ana was assigned to task "Write spec"`}, notifier.messages)
}

func TestMoveTask(t *testing.T) {
	s, _ := newTestSession(t)
	a, _ := s.AddTask("column-1", "a")
	b, _ := s.AddTask("column-1", "b")
	c, _ := s.AddTask("column-2", "c")

	require.NoError(t, s.MoveTask(a.ID, "column-1", "column-2"))

	source, _ := s.Column("column-1")
	target, _ := s.Column("column-2")
	assert.Equal(t, []string{b.ID}, source.TaskIDs)
	assert.Equal(t, []string{c.ID, a.ID}, target.TaskIDs)
	requireIntegrity(t, s.Engine)
}

func TestMoveTaskSameColumnKeepsOrder(t *testing.T) {
	s, _ := newTestSession(t)
	a, _ := s.AddTask("column-1", "a")
	s.AddTask("column-1", "b")
	before, _ := s.Column("column-1")

	require.NoError(t, s.MoveTask(a.ID, "column-1", "column-1"))

	after, _ := s.Column("column-1")
	assert.Equal(t, before.TaskIDs, after.TaskIDs)
}

func TestMoveTaskErrors(t *testing.T) {
	s, _ := newTestSession(t)
	a, _ := s.AddTask("column-1", "a")

	assert.ErrorIs(t, s.MoveTask(a.ID, "column-1", "column-9"), ErrNotFound)
	assert.ErrorIs(t, s.MoveTask(a.ID, "column-9", "column-1"), ErrNotFound)
	assert.ErrorIs(t, s.MoveTask("task-404", "column-1", "column-2"), ErrNotFound)
	// wrong source column must not duplicate the task
	assert.ErrorIs(t, s.MoveTask(a.ID, "column-2", "column-3"), ErrNotFound)

	column, _ := s.Column("column-1")
	assert.Equal(t, []string{a.ID}, column.TaskIDs)
	requireIntegrity(t, s.Engine)
}

func TestAddColumn(t *testing.T) {
	s, _ := newTestSession(t)

	first := s.AddColumn()
	second := s.AddColumn()

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "New Column", first.Title)
	assert.Equal(t, []string{"column-1", "column-2", "column-3", first.ID, second.ID}, s.ColumnOrder())
	requireIntegrity(t, s.Engine)
}

func TestDeleteColumnCascades(t *testing.T) {
	s, _ := newTestSession(t)
	a, _ := s.AddTask("column-1", "a")
	b, _ := s.AddTask("column-1", "b")
	keep, _ := s.AddTask("column-2", "keep")

	require.NoError(t, s.DeleteColumn("column-1"))

	snapshot := s.Snapshot()
	assert.NotContains(t, snapshot.Tasks, a.ID)
	assert.NotContains(t, snapshot.Tasks, b.ID)
	assert.Contains(t, snapshot.Tasks, keep.ID)
	assert.NotContains(t, snapshot.Columns, "column-1")
	assert.Equal(t, []string{"column-2", "column-3"}, snapshot.ColumnOrder)
	requireIntegrity(t, s.Engine)

	assert.ErrorIs(t, s.DeleteColumn("column-1"), ErrNotFound)
}

func TestDeleteTaskUsesActualOwner(t *testing.T) {
	s, _ := newTestSession(t)
	a, _ := s.AddTask("column-1", "a")
	require.NoError(t, s.MoveTask(a.ID, "column-1", "column-3"))

	// stale column hint
	require.NoError(t, s.DeleteTask(a.ID, "column-1"))

	column, _ := s.Column("column-3")
	assert.Empty(t, column.TaskIDs)
	_, ok := s.Task(a.ID)
	assert.False(t, ok)
	requireIntegrity(t, s.Engine)
}

func TestColumnTasks(t *testing.T) {
	s, _ := newTestSession(t)
	s.AddTask("column-2", "one")
	s.AddTask("column-2", "two")

	tasks, err := s.ColumnTasks("column-2")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "one", tasks[0].Content)
	assert.Equal(t, "two", tasks[1].Content)

	_, err = s.ColumnTasks("column-7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newTestSession(t)
	task, _ := s.AddTask("column-1", "a")
	require.NoError(t, s.UpdateTaskAssignee(task.ID, &ana))

	snapshot := s.Snapshot()
	column := snapshot.Columns["column-1"]
	column.TaskIDs[0] = "tampered"
	snapshot.Tasks[task.ID].Assignee.Name = "tampered"
	snapshot.ColumnOrder[0] = "tampered"

	fresh, _ := s.Column("column-1")
	assert.Equal(t, []string{task.ID}, fresh.TaskIDs)
	got, _ := s.Task(task.ID)
	assert.Equal(t, "Ana", got.Assignee.Name)
	assert.Equal(t, "column-1", s.ColumnOrder()[0])
}

func TestJournalReceivesEvents(t *testing.T) {
	var events []Event
	e := NewEngine(Options{
		Roster:  StaticRoster{ana},
		Journal: JournalFunc(func(ev Event) { events = append(events, ev) }),
	})

	task, _ := e.AddTask("column-1", "a")
	require.NoError(t, e.UpdateTaskAssignee(task.ID, &ana))
	require.NoError(t, e.MoveTask(task.ID, "column-1", "column-2"))
	assert.ErrorIs(t, e.UpdateTaskContent(task.ID, " "), ErrNoOpEdit)
	require.NoError(t, e.DeleteColumn("column-2"))

	types := make([]EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []EventType{EventTaskAdded, EventTaskAssigned, EventTaskMoved, EventColumnDeleted}, types)
	assert.Equal(t, task.ID, events[2].TaskID)
	assert.Equal(t, "column-2", events[2].ColumnID)
}

func TestIntegrityUnderMixedOperations(t *testing.T) {
	s, _ := newTestSession(t)
	extra := s.AddColumn()
	columns := s.ColumnOrder()

	var tasks []string
	for i := 0; i < 60; i++ {
		column := columns[i%len(columns)]
		task, err := s.AddTask(column, "t")
		if err != nil {
			continue
		}
		tasks = append(tasks, task.ID)

		if i%3 == 0 && len(tasks) > 1 {
			moving := tasks[i%len(tasks)]
			if owner, ok := s.OwnerOf(moving); ok {
				_ = s.MoveTask(moving, owner, columns[(i+1)%len(columns)])
			}
		}
		if i%7 == 0 {
			doomed := tasks[0]
			tasks = tasks[1:]
			owner, _ := s.OwnerOf(doomed)
			_ = s.DeleteTask(doomed, owner)
		}
		if i == 40 {
			require.NoError(t, s.DeleteColumn(extra.ID))
		}
		requireIntegrity(t, s.Engine)
	}
}
