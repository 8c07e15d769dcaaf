package db

import (
	"errors"
	"fmt"

	"github.com/balkashynov/fluxo/internal/models"
)

// ErrNotInitialized is returned when the session store has not been opened
var ErrNotInitialized = errors.New("session store not initialized")

// RecordActivity appends an entry to the board history
func RecordActivity(activity *models.Activity) error {
	if DB == nil {
		return ErrNotInitialized
	}

	if err := DB.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

// ListActivity returns the most recent history entries, newest first.
// A limit of zero or less returns everything.
func ListActivity(limit int) ([]models.Activity, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	query := DB.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return activities, nil
}

// ListTaskActivity returns the history of a single task, oldest first
func ListTaskActivity(taskID string) ([]models.Activity, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var activities []models.Activity
	if err := DB.Where("task_id = ?", taskID).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list task activity: %w", err)
	}

	return activities, nil
}
