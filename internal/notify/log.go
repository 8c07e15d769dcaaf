// Package notify keeps the in-app notification log and the board activity
// journal in the session store.
package notify

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/db"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/models"
)

// Entry is a notification ready for display
type Entry struct {
	models.Notification
	Unread bool
}

// Log records assignment notifications and tracks which ones have been seen.
// It satisfies board.Notifier.
type Log struct {
	log      logrus.FieldLogger
	now      func() time.Time
	lastSeen int64
	pending  []string
}

// NewLog returns a notification log writing to the session store
func NewLog(logger logrus.FieldLogger) *Log {
	return &Log{log: logger, now: time.Now}
}

// Notify stores a new notification stamped with the current time. Storage
// failures are logged, not returned.
func (l *Log) Notify(message string) {
	notification, err := db.CreateNotification(message, l.now())
	if err != nil {
		l.log.WithError(err).WithField("message", message).Warn("notification dropped")
		return
	}
	l.pending = append(l.pending, message)
	l.log.WithField("notification_id", notification.ID).Debug("notification stored")
}

// List returns every notification, newest first, flagged unread when it
// arrived after the last MarkRead
func (l *Log) List() ([]Entry, error) {
	notifications, err := db.ListNotifications()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(notifications))
	for _, n := range notifications {
		entries = append(entries, Entry{Notification: n, Unread: n.ID > l.lastSeen})
	}
	return entries, nil
}

// Unread counts notifications not yet marked read
func (l *Log) Unread() int {
	count, err := db.CountNotificationsAfter(l.lastSeen)
	if err != nil {
		l.log.WithError(err).Warn("failed to count unread notifications")
		return 0
	}
	return count
}

// MarkRead marks every stored notification as read
func (l *Log) MarkRead() {
	notifications, err := db.ListNotifications()
	if err != nil {
		l.log.WithError(err).Warn("failed to mark notifications read")
		return
	}
	if len(notifications) > 0 {
		l.lastSeen = notifications[0].ID
	}
}

// Drain returns the messages received since the previous Drain. Hosts use it
// to flash new notifications once.
func (l *Log) Drain() []string {
	messages := l.pending
	l.pending = nil
	return messages
}

// Age renders how long ago a notification arrived in the given locale
func (l *Log) Age(n models.Notification, loc locale.Locale) string {
	return loc.Age(n.CreatedAt, l.now())
}
