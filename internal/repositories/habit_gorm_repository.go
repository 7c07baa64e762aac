package repositories

import (
	"fmt"
	"time"

	"habitnow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMHabitRepository is a GORM implementation of HabitRepository.
type GORMHabitRepository struct {
	db *gorm.DB
}

// NewGORMHabitRepository creates a new instance of GORMHabitRepository.
func NewGORMHabitRepository(db *gorm.DB) *GORMHabitRepository {
	return &GORMHabitRepository{
		db: db,
	}
}

// Create inserts a new habit. The ID and timestamps are server-assigned here,
// never taken from the caller's payload.
func (r *GORMHabitRepository) Create(habit *models.Habit) error {
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	if err := r.db.Create(habit).Error; err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

// GetByID retrieves a single habit by its ID.
func (r *GORMHabitRepository) GetByID(id string) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.First(&habit, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("habit with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get habit by ID %s: %w", id, err)
	}
	return &habit, nil
}

// GetActiveByUser retrieves a user's active habits, newest first. Soft-deleted
// habits (is_active = false) are excluded but never physically removed.
func (r *GORMHabitRepository) GetActiveByUser(userID string) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&habits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get habits for user %s: %w", userID, err)
	}
	return habits, nil
}
