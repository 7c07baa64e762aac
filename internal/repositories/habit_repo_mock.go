package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"habitnow/internal/models"

	"github.com/google/uuid"
)

// MockHabitRepository is an in-memory implementation of HabitRepository.
type MockHabitRepository struct {
	habits map[string]models.Habit
	mu     sync.RWMutex
}

// NewMockHabitRepository creates a new instance of MockHabitRepository.
func NewMockHabitRepository() *MockHabitRepository {
	return &MockHabitRepository{
		habits: make(map[string]models.Habit),
	}
}

// Create adds a new habit.
func (r *MockHabitRepository) Create(habit *models.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	r.habits[habit.ID] = *habit
	return nil
}

// GetByID returns a habit by its ID.
func (r *MockHabitRepository) GetByID(id string) (*models.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.habits[id]
	if !ok {
		return nil, fmt.Errorf("habit with ID %s not found", id)
	}
	return &habit, nil
}

// GetActiveByUser returns a user's active habits ordered by creation time,
// newest first.
func (r *MockHabitRepository) GetActiveByUser(userID string) ([]models.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habitList := make([]models.Habit, 0)
	for _, habit := range r.habits {
		if habit.UserID == userID && habit.IsActive {
			habitList = append(habitList, habit)
		}
	}
	sort.Slice(habitList, func(i, j int) bool {
		return habitList[i].CreatedAt.After(habitList[j].CreatedAt)
	})
	return habitList, nil
}
