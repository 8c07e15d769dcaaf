// Package board implements the in-memory kanban board: the entity store, the
// engine that mutates it, and the drag and deletion coordinators built on top.
//
// All operations run synchronously on the caller's goroutine. The engine is
// not safe for concurrent use; hosts drive it from a single event loop.
package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/models"
)

// Notifier receives assignment messages
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Roster supplies the project members tasks can be assigned to
type Roster interface {
	Members() []models.Assignee
}

// StaticRoster is a fixed member list
type StaticRoster []models.Assignee

// Members returns the list itself
func (r StaticRoster) Members() []models.Assignee {
	return r
}

// Texts are the localized strings the engine writes into board state
type Texts struct {
	SeedColumnTitles [3]string
	NewColumnTitle   string
	Assigned         func(member, content string) string
}

// DefaultTexts returns the English texts
func DefaultTexts() Texts {
	return Texts{
		SeedColumnTitles: [3]string{"To Do", "In Progress", "Done"},
		NewColumnTitle:   "New Column",
		Assigned: func(member, content string) string {
			return fmt.Sprintf("%s was assigned to task \"%s\"", member, content)
		},
	}
}

// Options configures a new Engine. Every field is optional.
type Options struct {
	Roster   Roster
	Notifier Notifier
	Journal  Journal
	Logger   logrus.FieldLogger
	Texts    *Texts
}

// Engine owns the board state and enforces its invariants
type Engine struct {
	store    *Store
	roster   Roster
	notifier Notifier
	journal  Journal
	log      logrus.FieldLogger
	texts    Texts

	taskSeq   int
	columnSeq int
}

// NewEngine creates an engine seeded with the three default columns
func NewEngine(opts Options) *Engine {
	e := &Engine{
		store:    NewStore(),
		roster:   opts.Roster,
		notifier: opts.Notifier,
		journal:  opts.Journal,
		log:      opts.Logger,
		texts:    DefaultTexts(),
	}
	if opts.Texts != nil {
		e.texts = *opts.Texts
	}
	if e.roster == nil {
		e.roster = StaticRoster(nil)
	}
	if e.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		e.log = quiet
	}

	for _, title := range e.texts.SeedColumnTitles {
		e.columnSeq++
		id := fmt.Sprintf("column-%d", e.columnSeq)
		e.store.AppendColumn(&models.Column{ID: id, Title: title, TaskIDs: []string{}})
	}
	return e
}

// AddTask creates a task at the end of the given column
func (e *Engine) AddTask(columnID, content string) (models.Task, error) {
	if !e.store.HasColumn(columnID) {
		return models.Task{}, e.notFound("column", columnID)
	}

	task := &models.Task{ID: e.nextTaskID(), Content: content}
	e.store.PutTask(task)
	e.store.AppendTaskID(columnID, task.ID)

	e.log.WithFields(logrus.Fields{"task_id": task.ID, "column_id": columnID}).Debug("task added")
	e.record(Event{Type: EventTaskAdded, TaskID: task.ID, ColumnID: columnID, Details: content})
	return task.Clone(), nil
}

// UpdateTaskContent replaces a task's content. Blank content keeps the
// previous value and returns ErrNoOpEdit.
func (e *Engine) UpdateTaskContent(taskID, content string) error {
	task, ok := e.store.Task(taskID)
	if !ok {
		return e.notFound("task", taskID)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		e.log.WithField("task_id", taskID).Debug("empty task edit discarded")
		return fmt.Errorf("task %q: %w", taskID, ErrNoOpEdit)
	}
	if content == task.Content {
		return nil
	}

	before := task.Content
	task.Content = content
	e.record(Event{Type: EventTaskEdited, TaskID: taskID, Details: fmt.Sprintf("%q -> %q", before, content)})
	return nil
}

// UpdateColumnTitle renames a column. Blank titles keep the previous value
// and return ErrNoOpEdit.
func (e *Engine) UpdateColumnTitle(columnID, title string) error {
	column, ok := e.store.Column(columnID)
	if !ok {
		return e.notFound("column", columnID)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		e.log.WithField("column_id", columnID).Debug("empty column title discarded")
		return fmt.Errorf("column %q: %w", columnID, ErrNoOpEdit)
	}
	if title == column.Title {
		return nil
	}

	before := column.Title
	column.Title = title
	e.record(Event{Type: EventColumnRenamed, ColumnID: columnID, Details: fmt.Sprintf("%q -> %q", before, title)})
	return nil
}

// UpdateTaskAssignee sets or clears (nil) a task's assignee. Assigning a
// member different from the current one sends exactly one notification.
func (e *Engine) UpdateTaskAssignee(taskID string, assignee *models.Assignee) error {
	task, ok := e.store.Task(taskID)
	if !ok {
		return e.notFound("task", taskID)
	}

	if assignee == nil {
		if task.Assignee == nil {
			return nil
		}
		previous := task.Assignee.Name
		task.Assignee = nil
		e.record(Event{Type: EventTaskUnassigned, TaskID: taskID, Details: previous})
		return nil
	}

	member, ok := e.member(assignee.ID)
	if !ok {
		return fmt.Errorf("member %q: %w", assignee.ID, ErrUnknownMember)
	}
	if task.Assignee != nil && task.Assignee.ID == member.ID {
		return nil
	}

	task.Assignee = &member
	e.log.WithFields(logrus.Fields{"task_id": taskID, "member_id": member.ID}).Debug("task assigned")
	e.record(Event{Type: EventTaskAssigned, TaskID: taskID, Details: member.Name})
	if e.notifier != nil {
		e.notifier.Notify(e.texts.Assigned(member.Name, task.Content))
	}
	return nil
}

// MoveTask moves a task from the source column to the end of the target
// column. Moving within the same column leaves the order untouched.
func (e *Engine) MoveTask(taskID, sourceColumnID, targetColumnID string) error {
	if sourceColumnID == targetColumnID {
		return nil
	}
	if !e.store.HasColumn(sourceColumnID) {
		return e.notFound("column", sourceColumnID)
	}
	if !e.store.HasColumn(targetColumnID) {
		return e.notFound("column", targetColumnID)
	}
	if !e.store.HasTask(taskID) || !e.store.RemoveTaskID(sourceColumnID, taskID) {
		return e.notFound("task", taskID)
	}
	e.store.AppendTaskID(targetColumnID, taskID)

	e.log.WithFields(logrus.Fields{"task_id": taskID, "from": sourceColumnID, "to": targetColumnID}).Debug("task moved")
	e.record(Event{Type: EventTaskMoved, TaskID: taskID, ColumnID: targetColumnID, Details: sourceColumnID + " -> " + targetColumnID})
	return nil
}

// AddColumn appends an empty column with the placeholder title
func (e *Engine) AddColumn() models.Column {
	column := &models.Column{ID: e.nextColumnID(), Title: e.texts.NewColumnTitle, TaskIDs: []string{}}
	e.store.AppendColumn(column)

	e.log.WithField("column_id", column.ID).Debug("column added")
	e.record(Event{Type: EventColumnAdded, ColumnID: column.ID, Details: column.Title})
	return column.Clone()
}

// DeleteTask removes a task and strips its id from the column that holds it.
// columnID is a hint; if the task has since moved, its current owner is used.
func (e *Engine) DeleteTask(taskID, columnID string) error {
	if !e.store.HasTask(taskID) {
		return e.notFound("task", taskID)
	}
	if !e.store.RemoveTaskID(columnID, taskID) {
		if owner, ok := e.store.Owner(taskID); ok {
			columnID = owner
			e.store.RemoveTaskID(owner, taskID)
		}
	}
	e.store.DeleteTask(taskID)

	e.log.WithFields(logrus.Fields{"task_id": taskID, "column_id": columnID}).Debug("task deleted")
	e.record(Event{Type: EventTaskDeleted, TaskID: taskID, ColumnID: columnID})
	return nil
}

// DeleteColumn removes a column together with every task it holds
func (e *Engine) DeleteColumn(columnID string) error {
	column, ok := e.store.Column(columnID)
	if !ok {
		return e.notFound("column", columnID)
	}
	for _, taskID := range column.TaskIDs {
		e.store.DeleteTask(taskID)
	}
	e.store.DeleteColumn(columnID)

	e.log.WithFields(logrus.Fields{"column_id": columnID, "tasks": len(column.TaskIDs)}).Debug("column deleted")
	e.record(Event{Type: EventColumnDeleted, ColumnID: columnID, Details: fmt.Sprintf("%s (%d tasks)", column.Title, len(column.TaskIDs))})
	return nil
}

// Delete carries out a staged deletion target
func (e *Engine) Delete(target DeletionTarget) error {
	switch t := target.(type) {
	case TaskDeletion:
		return e.DeleteTask(t.TaskID, t.ColumnID)
	case ColumnDeletion:
		return e.DeleteColumn(t.ColumnID)
	default:
		return ErrNoPendingDeletion
	}
}

// Task returns a copy of a task
func (e *Engine) Task(id string) (models.Task, bool) {
	task, ok := e.store.Task(id)
	if !ok {
		return models.Task{}, false
	}
	return task.Clone(), true
}

// Column returns a copy of a column
func (e *Engine) Column(id string) (models.Column, bool) {
	column, ok := e.store.Column(id)
	if !ok {
		return models.Column{}, false
	}
	return column.Clone(), true
}

// ColumnOrder returns the column ids from left to right
func (e *Engine) ColumnOrder() []string {
	return e.store.Order()
}

// ColumnTasks returns the tasks of a column in display order
func (e *Engine) ColumnTasks(columnID string) ([]models.Task, error) {
	column, ok := e.store.Column(columnID)
	if !ok {
		return nil, e.notFound("column", columnID)
	}
	tasks := make([]models.Task, 0, len(column.TaskIDs))
	for _, id := range column.TaskIDs {
		if task, ok := e.store.Task(id); ok {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks, nil
}

// OwnerOf returns the id of the column holding a task
func (e *Engine) OwnerOf(taskID string) (string, bool) {
	return e.store.Owner(taskID)
}

// Roster returns the current project members
func (e *Engine) Roster() []models.Assignee {
	return e.roster.Members()
}

// Snapshot returns a deep copy of the whole board
func (e *Engine) Snapshot() models.BoardSnapshot {
	taskCount, columnCount := e.store.Len()
	snapshot := models.BoardSnapshot{
		Tasks:       make(map[string]models.Task, taskCount),
		Columns:     make(map[string]models.Column, columnCount),
		ColumnOrder: e.store.Order(),
	}
	for id, task := range e.store.tasks {
		snapshot.Tasks[id] = task.Clone()
	}
	for id, column := range e.store.columns {
		snapshot.Columns[id] = column.Clone()
	}
	return snapshot
}

func (e *Engine) member(id string) (models.Assignee, bool) {
	for _, m := range e.roster.Members() {
		if m.ID == id {
			return m, true
		}
	}
	return models.Assignee{}, false
}

func (e *Engine) nextTaskID() string {
	for {
		e.taskSeq++
		id := fmt.Sprintf("task-%d", e.taskSeq)
		if !e.store.HasTask(id) {
			return id
		}
	}
}

func (e *Engine) nextColumnID() string {
	for {
		e.columnSeq++
		id := fmt.Sprintf("column-%d", e.columnSeq)
		if !e.store.HasColumn(id) {
			return id
		}
	}
}

func (e *Engine) notFound(kind, id string) error {
	e.log.WithField(kind+"_id", id).Debug(kind + " not found")
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

func (e *Engine) record(event Event) {
	if e.journal != nil {
		e.journal.Record(event)
	}
}
