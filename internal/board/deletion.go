package board

import "fmt"

// DeletionTarget is a staged deletion: either a TaskDeletion or a
// ColumnDeletion. A nil target means nothing is pending.
type DeletionTarget interface {
	// Label is the human-readable name captured when the deletion was requested
	Label() string
	deletionTarget()
}

// TaskDeletion stages the removal of one task
type TaskDeletion struct {
	TaskID   string
	ColumnID string
	Content  string
}

// Label returns the task content at request time
func (t TaskDeletion) Label() string { return t.Content }

func (TaskDeletion) deletionTarget() {}

// ColumnDeletion stages the removal of a column and all of its tasks
type ColumnDeletion struct {
	ColumnID string
	Title    string
}

// Label returns the column title at request time
func (c ColumnDeletion) Label() string { return c.Title }

func (ColumnDeletion) deletionTarget() {}

// Deletion is the two-phase delete flow. A request stages a target without
// touching the board; Confirm or Cancel resolves it. A second request
// replaces the first.
type Deletion struct {
	engine  *Engine
	pending DeletionTarget
}

// NewDeletion creates an idle deletion flow for the given engine
func NewDeletion(engine *Engine) *Deletion {
	return &Deletion{engine: engine}
}

// RequestTask stages the deletion of a task
func (d *Deletion) RequestTask(taskID, columnID string) (TaskDeletion, error) {
	task, ok := d.engine.Task(taskID)
	if !ok {
		return TaskDeletion{}, fmt.Errorf("task %q: %w", taskID, ErrNotFound)
	}
	target := TaskDeletion{TaskID: taskID, ColumnID: columnID, Content: task.Content}
	d.pending = target
	return target, nil
}

// RequestColumn stages the deletion of a column
func (d *Deletion) RequestColumn(columnID string) (ColumnDeletion, error) {
	column, ok := d.engine.Column(columnID)
	if !ok {
		return ColumnDeletion{}, fmt.Errorf("column %q: %w", columnID, ErrNotFound)
	}
	target := ColumnDeletion{ColumnID: columnID, Title: column.Title}
	d.pending = target
	return target, nil
}

// Pending returns the staged target, if any
func (d *Deletion) Pending() (DeletionTarget, bool) {
	return d.pending, d.pending != nil
}

// Confirm carries out the staged deletion. A target whose entity is already
// gone resolves as a no-op.
func (d *Deletion) Confirm() error {
	if d.pending == nil {
		return ErrNoPendingDeletion
	}
	target := d.pending
	d.pending = nil

	err := d.engine.Delete(target)
	if err != nil && isNotFound(err) {
		d.engine.log.WithField("target", target.Label()).Debug("stale deletion target ignored")
		return nil
	}
	return err
}

// Cancel discards the staged target
func (d *Deletion) Cancel() {
	d.pending = nil
}
