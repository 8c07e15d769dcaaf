package db

import (
	"fmt"
	"time"

	"github.com/balkashynov/fluxo/internal/models"
)

// CreateNotification stores a message. Ids grow with every call.
func CreateNotification(message string, at time.Time) (*models.Notification, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	notification := models.Notification{
		Message:   message,
		CreatedAt: at.UTC(),
	}
	if err := DB.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return &notification, nil
}

// ListNotifications returns every notification, newest first
func ListNotifications() ([]models.Notification, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var notifications []models.Notification
	if err := DB.Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// CountNotificationsAfter counts notifications with an id above the given one
func CountNotificationsAfter(id int64) (int, error) {
	if DB == nil {
		return 0, ErrNotInitialized
	}

	var count int64
	if err := DB.Model(&models.Notification{}).Where("id > ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return int(count), nil
}
