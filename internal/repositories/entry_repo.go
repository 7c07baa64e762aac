package repositories

import (
	"habitnow/internal/models"
)

// EntryRepository defines the interface for habit entry data access.
//
// Upsert must be atomic on the (habit_id, user_id, entry_date) key: two
// concurrent calls for the same key never produce two rows, the second call
// wins on amount/notes, and the first row's id and created_at survive.
type EntryRepository interface {
	Upsert(entry *models.HabitEntry) error
	GetByNaturalKey(habitID, userID, entryDate string) (*models.HabitEntry, error)
	GetByHabit(habitID, userID string) ([]models.HabitEntry, error)
}
