package models

// Assignee is a project member a task can be assigned to
type Assignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task represents a card on the board. The owning column is tracked by the
// column's TaskIDs, not by the task itself.
type Task struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Assignee *Assignee `json:"assignee,omitempty"`
}

// Column represents a board column holding an ordered list of task ids
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	TaskIDs []string `json:"taskIds"`
}

// BoardSnapshot is a detached copy of the whole board
type BoardSnapshot struct {
	Tasks       map[string]Task   `json:"tasks"`
	Columns     map[string]Column `json:"columns"`
	ColumnOrder []string          `json:"columnOrder"`
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	if t.Assignee != nil {
		a := *t.Assignee
		t.Assignee = &a
	}
	return t
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	c.TaskIDs = append([]string(nil), c.TaskIDs...)
	if c.TaskIDs == nil {
		c.TaskIDs = []string{}
	}
	return c
}
