package models

import (
	"time"
)

// Activity is one entry of the session's board history
type Activity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EventType string `gorm:"not null;index" json:"event_type"` // task_added, task_moved, column_deleted, ...
	TaskID    string `gorm:"index" json:"task_id,omitempty"`
	ColumnID  string `gorm:"index" json:"column_id,omitempty"`
	Details   string `json:"details"`
}
