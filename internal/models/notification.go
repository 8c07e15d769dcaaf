package models

import (
	"time"
)

// TimestampLayout renders notification timestamps as ISO-8601 UTC with milliseconds
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Notification is an in-app message about board activity
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;index" json:"-"`
}

// Timestamp returns the ISO-8601 form of CreatedAt
func (n Notification) Timestamp() string {
	return n.CreatedAt.UTC().Format(TimestampLayout)
}
