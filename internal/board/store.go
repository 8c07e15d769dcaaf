package board

import (
	"slices"

	"github.com/balkashynov/fluxo/internal/models"
)

// Store holds tasks and columns by id plus the column display order.
// It performs no cross-reference validation; Engine does.
type Store struct {
	tasks   map[string]*models.Task
	columns map[string]*models.Column
	order   []string
	owner   map[string]string // task id -> column id
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		tasks:   make(map[string]*models.Task),
		columns: make(map[string]*models.Column),
		owner:   make(map[string]string),
	}
}

// Task returns the stored task
func (s *Store) Task(id string) (*models.Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

// PutTask inserts or replaces a task
func (s *Store) PutTask(task *models.Task) {
	s.tasks[task.ID] = task
}

// DeleteTask removes a task record and its owner entry
func (s *Store) DeleteTask(id string) {
	delete(s.tasks, id)
	delete(s.owner, id)
}

// Column returns the stored column
func (s *Store) Column(id string) (*models.Column, bool) {
	column, ok := s.columns[id]
	return column, ok
}

// AppendColumn stores a column and places it last in the display order
func (s *Store) AppendColumn(column *models.Column) {
	s.columns[column.ID] = column
	s.order = append(s.order, column.ID)
}

// DeleteColumn removes a column and its place in the display order
func (s *Store) DeleteColumn(id string) {
	delete(s.columns, id)
	s.order = slices.DeleteFunc(s.order, func(columnID string) bool {
		return columnID == id
	})
}

// Order returns a copy of the column display order
func (s *Store) Order() []string {
	return slices.Clone(s.order)
}

// AppendTaskID puts a task id at the end of a column
func (s *Store) AppendTaskID(columnID, taskID string) {
	column := s.columns[columnID]
	column.TaskIDs = append(column.TaskIDs, taskID)
	s.owner[taskID] = columnID
}

// RemoveTaskID strips a task id from a column, reporting whether it was present
func (s *Store) RemoveTaskID(columnID, taskID string) bool {
	column, ok := s.columns[columnID]
	if !ok {
		return false
	}
	index := slices.Index(column.TaskIDs, taskID)
	if index < 0 {
		return false
	}
	column.TaskIDs = slices.Delete(column.TaskIDs, index, index+1)
	if s.owner[taskID] == columnID {
		delete(s.owner, taskID)
	}
	return true
}

// Owner returns the id of the column holding the task
func (s *Store) Owner(taskID string) (string, bool) {
	columnID, ok := s.owner[taskID]
	return columnID, ok
}

// HasTask reports whether a task id is in use
func (s *Store) HasTask(id string) bool {
	_, ok := s.tasks[id]
	return ok
}

// HasColumn reports whether a column id is in use
func (s *Store) HasColumn(id string) bool {
	_, ok := s.columns[id]
	return ok
}

// Len returns the number of tasks and columns
func (s *Store) Len() (tasks, columns int) {
	return len(s.tasks), len(s.columns)
}
