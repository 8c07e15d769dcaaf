package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/db"
	"github.com/balkashynov/fluxo/internal/models"
)

// Journal writes board events to the activity history. It satisfies
// board.Journal.
type Journal struct {
	log logrus.FieldLogger
}

// NewJournal returns a journal writing to the session store
func NewJournal(logger logrus.FieldLogger) *Journal {
	return &Journal{log: logger}
}

// Record stores one board event
func (j *Journal) Record(event board.Event) {
	activity := models.Activity{
		EventType: string(event.Type),
		TaskID:    event.TaskID,
		ColumnID:  event.ColumnID,
		Details:   event.Details,
	}
	if err := db.RecordActivity(&activity); err != nil {
		j.log.WithError(err).WithField("event", event.Type).Warn("activity dropped")
	}
}

// Recent returns the latest history entries, newest first
func (j *Journal) Recent(limit int) ([]models.Activity, error) {
	return db.ListActivity(limit)
}

// Task returns the history of one task, oldest first
func (j *Journal) Task(taskID string) ([]models.Activity, error) {
	return db.ListTaskActivity(taskID)
}
