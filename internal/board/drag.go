package board

// DragSession records the task being relocated and where it came from
type DragSession struct {
	TaskID         string
	SourceColumnID string
}

// DragTracker turns a pick-up / drop gesture into a MoveTask call.
// It is Idle until Start and returns to Idle on Drop or End.
type DragTracker struct {
	engine *Engine
	active *DragSession
}

// NewDragTracker creates an idle tracker feeding the given engine
func NewDragTracker(engine *Engine) *DragTracker {
	return &DragTracker{engine: engine}
}

// Start begins a drag. A drag already in progress is replaced.
func (d *DragTracker) Start(taskID, sourceColumnID string) {
	d.active = &DragSession{TaskID: taskID, SourceColumnID: sourceColumnID}
}

// Active returns the drag in progress, if any
func (d *DragTracker) Active() (DragSession, bool) {
	if d.active == nil {
		return DragSession{}, false
	}
	return *d.active, true
}

// Dragging reports whether taskID is the task being dragged
func (d *DragTracker) Dragging(taskID string) bool {
	return d.active != nil && d.active.TaskID == taskID
}

// Drop moves the dragged task to targetColumnID and ends the drag whatever
// the outcome. With no drag in progress it returns ErrInvalidDrag.
func (d *DragTracker) Drop(targetColumnID string) error {
	if d.active == nil {
		return ErrInvalidDrag
	}
	session := *d.active
	d.active = nil
	return d.engine.MoveTask(session.TaskID, session.SourceColumnID, targetColumnID)
}

// End abandons the drag without touching the board
func (d *DragTracker) End() {
	d.active = nil
}
