package models

import "time"

// HabitEntry represents one day's logged progress against a habit. At most
// one entry exists per (habit_id, user_id, entry_date); logging twice on the
// same date updates the existing row.
type HabitEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	HabitID   string    `json:"habit_id" gorm:"type:varchar(36);uniqueIndex:idx_entry_natural_key"`
	UserID    string    `json:"user_id" gorm:"type:varchar(255);uniqueIndex:idx_entry_natural_key"`
	EntryDate string    `json:"entry_date" gorm:"type:varchar(10);uniqueIndex:idx_entry_natural_key"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateHabitEntryRequest is the payload for logging progress on a habit.
// A zero amount is valid (an explicit "did nothing today").
type CreateHabitEntryRequest struct {
	EntryDate string  `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Notes     string  `json:"notes" validate:"omitempty,max=500"`
}
