package board

// EventType names a board mutation
type EventType string

const (
	EventTaskAdded      EventType = "task_added"
	EventTaskEdited     EventType = "task_edited"
	EventTaskAssigned   EventType = "task_assigned"
	EventTaskUnassigned EventType = "task_unassigned"
	EventTaskMoved      EventType = "task_moved"
	EventTaskDeleted    EventType = "task_deleted"
	EventColumnAdded    EventType = "column_added"
	EventColumnRenamed  EventType = "column_renamed"
	EventColumnDeleted  EventType = "column_deleted"
)

// Event describes one successful board mutation
type Event struct {
	Type     EventType
	TaskID   string
	ColumnID string
	Details  string
}

// Journal receives board events as they happen
type Journal interface {
	Record(event Event)
}

// JournalFunc adapts a function to Journal
type JournalFunc func(event Event)

// Record calls f(event)
func (f JournalFunc) Record(event Event) {
	f(event)
}
