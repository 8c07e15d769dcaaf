package board

import "fmt"

// CheckIntegrity verifies that every column task id references a live task,
// that no task sits in two columns, and that the column order matches the
// column set exactly.
func (e *Engine) CheckIntegrity() error {
	taskCount, columnCount := e.store.Len()

	seen := make(map[string]string, taskCount)
	for id, column := range e.store.columns {
		for _, taskID := range column.TaskIDs {
			if !e.store.HasTask(taskID) {
				return fmt.Errorf("column %q references missing task %q", id, taskID)
			}
			if other, dup := seen[taskID]; dup {
				return fmt.Errorf("task %q is in both %q and %q", taskID, other, id)
			}
			seen[taskID] = id
		}
	}
	if len(seen) != taskCount {
		return fmt.Errorf("%d of %d tasks belong to no column", taskCount-len(seen), taskCount)
	}

	order := e.store.order
	if len(order) != columnCount {
		return fmt.Errorf("column order has %d entries for %d columns", len(order), columnCount)
	}
	inOrder := make(map[string]bool, len(order))
	for _, id := range order {
		if inOrder[id] {
			return fmt.Errorf("column %q appears twice in the order", id)
		}
		if !e.store.HasColumn(id) {
			return fmt.Errorf("column order references missing column %q", id)
		}
		inOrder[id] = true
	}
	return nil
}
