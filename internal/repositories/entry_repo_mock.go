package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"habitnow/internal/models"

	"github.com/google/uuid"
)

// MockEntryRepository is an in-memory implementation of EntryRepository. The
// mutex around the map gives the same serialization on the natural key that
// the database's unique index gives the GORM implementation.
type MockEntryRepository struct {
	entries map[string]models.HabitEntry // keyed by habit_id|user_id|entry_date
	mu      sync.RWMutex
}

// NewMockEntryRepository creates a new instance of MockEntryRepository.
func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]models.HabitEntry),
	}
}

func entryKey(habitID, userID, entryDate string) string {
	return habitID + "|" + userID + "|" + entryDate
}

// Upsert inserts or updates the entry for its natural key. On update only
// amount, notes and updated_at change; the stored id and created_at survive
// and are copied back into the argument.
func (r *MockEntryRepository) Upsert(entry *models.HabitEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := entryKey(entry.HabitID, entry.UserID, entry.EntryDate)
	if existing, ok := r.entries[key]; ok {
		existing.Amount = entry.Amount
		existing.Notes = entry.Notes
		existing.UpdatedAt = now
		r.entries[key] = existing
		*entry = existing
		return nil
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[key] = *entry
	return nil
}

// GetByNaturalKey returns the entry for a habit, user and date.
func (r *MockEntryRepository) GetByNaturalKey(habitID, userID, entryDate string) (*models.HabitEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[entryKey(habitID, userID, entryDate)]
	if !ok {
		return nil, fmt.Errorf("entry for habit %s on %s not found", habitID, entryDate)
	}
	return &entry, nil
}

// GetByHabit returns a user's entries for a habit, most recent date first.
func (r *MockEntryRepository) GetByHabit(habitID, userID string) ([]models.HabitEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.HabitEntry, 0)
	for _, entry := range r.entries {
		if entry.HabitID == habitID && entry.UserID == userID {
			entryList = append(entryList, entry)
		}
	}
	sort.Slice(entryList, func(i, j int) bool {
		return entryList[i].EntryDate > entryList[j].EntryDate
	})
	return entryList, nil
}
