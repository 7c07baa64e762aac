package services

import (
	"fmt"
	"log"

	"habitnow/internal/models"
	"habitnow/internal/repositories"
	"habitnow/pkg/rabbitmq"
)

// EntryService handles business logic for habit entries.
type EntryService struct {
	entryRepo repositories.EntryRepository
	publisher EventPublisher
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo repositories.EntryRepository, publisher EventPublisher) *EntryService {
	return &EntryService{
		entryRepo: entryRepo,
		publisher: publisher,
	}
}

// ListEntries returns the caller's entries for a habit, most recent date
// first. A habit ID the caller does not own matches no rows and yields an
// empty list, indistinguishable from a habit with no entries.
func (s *EntryService) ListEntries(userID, habitID string) ([]models.HabitEntry, error) {
	return s.entryRepo.GetByHabit(habitID, userID)
}

// LogEntry records progress for a habit on a date. Logging twice for the same
// date updates the existing entry in place (last write wins on amount and
// notes) instead of creating a duplicate. The returned entry is the canonical
// stored row read back after the upsert.
func (s *EntryService) LogEntry(userID, habitID string, req models.CreateHabitEntryRequest) (*models.HabitEntry, error) {
	entry := &models.HabitEntry{
		HabitID:   habitID,
		UserID:    userID,
		EntryDate: req.EntryDate,
		Amount:    req.Amount,
		Notes:     req.Notes,
	}

	if err := s.entryRepo.Upsert(entry); err != nil {
		return nil, fmt.Errorf("failed to log entry: %w", err)
	}

	canonical, err := s.entryRepo.GetByNaturalKey(habitID, userID, req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read back logged entry: %w", err)
	}

	s.publishEvent(rabbitmq.EventEntryLogged, map[string]interface{}{
		"entryID":   canonical.ID,
		"habitID":   canonical.HabitID,
		"userID":    canonical.UserID,
		"entryDate": canonical.EntryDate,
		"amount":    canonical.Amount,
	})

	return canonical, nil
}

func (s *EntryService) publishEvent(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishHabitEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
