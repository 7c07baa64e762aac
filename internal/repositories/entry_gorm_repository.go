package repositories

import (
	"fmt"
	"time"

	"habitnow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMEntryRepository is a GORM implementation of EntryRepository.
type GORMEntryRepository struct {
	db *gorm.DB
}

// NewGORMEntryRepository creates a new instance of GORMEntryRepository.
func NewGORMEntryRepository(db *gorm.DB) *GORMEntryRepository {
	return &GORMEntryRepository{
		db: db,
	}
}

// Upsert inserts a new entry, or updates amount, notes and updated_at of the
// existing row for the same (habit_id, user_id, entry_date). The conflict is
// resolved by the database in a single statement against the unique index, so
// concurrent submissions for the same date serialize there and never create a
// duplicate row. The existing row keeps its id and created_at.
func (r *GORMEntryRepository) Upsert(entry *models.HabitEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "habit_id"},
			{Name: "user_id"},
			{Name: "entry_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "notes", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert entry for habit %s on %s: %w", entry.HabitID, entry.EntryDate, err)
	}
	return nil
}

// GetByNaturalKey retrieves the entry for a habit, user and date. This is the
// canonical read-back after an upsert.
func (r *GORMEntryRepository) GetByNaturalKey(habitID, userID, entryDate string) (*models.HabitEntry, error) {
	var entry models.HabitEntry
	err := r.db.First(&entry, "habit_id = ? AND user_id = ? AND entry_date = ?", habitID, userID, entryDate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("entry for habit %s on %s not found", habitID, entryDate)
		}
		return nil, fmt.Errorf("failed to get entry for habit %s on %s: %w", habitID, entryDate, err)
	}
	return &entry, nil
}

// GetByHabit retrieves all of a user's entries for a habit, most recent date
// first. The user_id filter is the isolation boundary: entries are always
// written with the writer's own user_id, so foreign habit IDs simply match
// nothing.
func (r *GORMEntryRepository) GetByHabit(habitID, userID string) ([]models.HabitEntry, error) {
	entries := make([]models.HabitEntry, 0)
	err := r.db.
		Where("habit_id = ? AND user_id = ?", habitID, userID).
		Order("entry_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for habit %s: %w", habitID, err)
	}
	return entries, nil
}
