package board

// Session bundles an engine with its drag and deletion coordinators. It is
// the full surface a host UI needs.
type Session struct {
	*Engine
	Drag     *DragTracker
	Deletion *Deletion
}

// NewSession creates a seeded board with idle coordinators
func NewSession(opts Options) *Session {
	engine := NewEngine(opts)
	return &Session{
		Engine:   engine,
		Drag:     NewDragTracker(engine),
		Deletion: NewDeletion(engine),
	}
}
