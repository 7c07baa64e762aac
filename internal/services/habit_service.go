package services

import (
	"fmt"
	"log"

	"habitnow/internal/models"
	"habitnow/internal/repositories"
	"habitnow/pkg/rabbitmq"
)

// EventPublisher publishes habit domain events. It is satisfied by
// *rabbitmq.Client; a nil publisher disables publication.
type EventPublisher interface {
	PublishHabitEvent(event string, payload map[string]interface{}) error
}

// HabitService handles business logic for habits.
type HabitService struct {
	habitRepo repositories.HabitRepository
	publisher EventPublisher
}

// NewHabitService creates a new HabitService.
func NewHabitService(habitRepo repositories.HabitRepository, publisher EventPublisher) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
		publisher: publisher,
	}
}

// ListHabits returns the caller's active habits, newest first.
func (s *HabitService) ListHabits(userID string) ([]models.Habit, error) {
	return s.habitRepo.GetActiveByUser(userID)
}

// CreateHabit creates a habit owned by userID from a validated request. The
// returned habit is read back from storage so that the server-assigned id and
// timestamps are authoritative, not echoed from the input. Retried requests
// legitimately create duplicate habits; there is no idempotency key.
func (s *HabitService) CreateHabit(userID string, req models.CreateHabitRequest) (*models.Habit, error) {
	habit := &models.Habit{
		UserID:          userID,
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		TargetFrequency: req.TargetFrequency,
		TargetAmount:    req.TargetAmount,
		TargetUnit:      req.TargetUnit,
		IsActive:        true,
	}

	if err := s.habitRepo.Create(habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	created, err := s.habitRepo.GetByID(habit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created habit: %w", err)
	}

	s.publishEvent(rabbitmq.EventHabitCreated, map[string]interface{}{
		"habitID":  created.ID,
		"userID":   created.UserID,
		"category": created.Category,
	})

	return created, nil
}

// publishEvent is best-effort: failures are logged and never fail the
// request that triggered them.
func (s *HabitService) publishEvent(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishHabitEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
