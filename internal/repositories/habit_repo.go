package repositories

import (
	"habitnow/internal/models"
)

// HabitRepository defines the interface for habit data access.
type HabitRepository interface {
	Create(habit *models.Habit) error
	GetByID(id string) (*models.Habit, error)
	GetActiveByUser(userID string) ([]models.Habit, error)
}
