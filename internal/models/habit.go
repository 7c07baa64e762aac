package models

import "time"

// Habit categories accepted by the API.
const (
	CategoryExercise = "exercise"
	CategoryFood     = "food"
	CategoryRoutine  = "routine"
	CategoryStudy    = "study"
)

// FrequencyDaily is the only supported target frequency. The column is kept
// as text so additional frequencies can be added without a migration.
const FrequencyDaily = "daily"

// Habit represents a daily habit tracked by a single user.
type Habit struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"user_id" gorm:"type:varchar(255);index"`
	Name            string    `json:"name" gorm:"type:varchar(100)"`
	Category        string    `json:"category" gorm:"type:varchar(20)"`
	Description     string    `json:"description" gorm:"type:varchar(500)"`
	TargetFrequency string    `json:"target_frequency" gorm:"type:varchar(20)"`
	TargetAmount    float64   `json:"target_amount"`
	TargetUnit      string    `json:"target_unit" gorm:"type:varchar(50)"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateHabitRequest is the payload for creating a habit. Ownership is never
// taken from the payload: the user ID always comes from the session identity.
type CreateHabitRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Category        string  `json:"category" validate:"required,oneof=exercise food routine study"`
	Description     string  `json:"description" validate:"omitempty,max=500"`
	TargetFrequency string  `json:"target_frequency" validate:"required,oneof=daily"`
	TargetAmount    float64 `json:"target_amount" validate:"required,gte=1"`
	TargetUnit      string  `json:"target_unit" validate:"required,min=1,max=50"`
}
