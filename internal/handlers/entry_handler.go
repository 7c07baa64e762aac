package handlers

import (
	"log"

	"habitnow/internal/middleware"
	"habitnow/internal/models"
	"habitnow/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EntryHandler handles HTTP requests for habit entries.
type EntryHandler struct {
	service  *services.EntryService
	validate *validator.Validate
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service *services.EntryService) *EntryHandler {
	return &EntryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the entry routes with the Fiber app. Entries are
// addressed under their habit.
func (h *EntryHandler) RegisterRoutes(router fiber.Router) {
	habitRoutes := router.Group("/habits")
	habitRoutes.Get("/:id/entries", h.HandleListEntries)
	habitRoutes.Post("/:id/entries", h.HandleLogEntry)
}

// HandleListEntries returns the caller's entries for a habit, most recent
// date first. A habit the caller does not own yields an empty list, the same
// response as a habit with no entries.
func (h *EntryHandler) HandleListEntries(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	habitID := c.Params("id")

	entries, err := h.service.ListEntries(user.ID, habitID)
	if err != nil {
		log.Printf("Error listing entries for habit %s: %v", habitID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch entries",
		})
	}
	return c.JSON(entries)
}

// HandleLogEntry records progress for a habit on a date. A second submission
// for the same date updates the stored entry instead of creating a duplicate.
func (h *EntryHandler) HandleLogEntry(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	habitID := c.Params("id")

	var req models.CreateHabitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing log entry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErrorMessage(err),
		})
	}

	entry, err := h.service.LogEntry(user.ID, habitID, req)
	if err != nil {
		log.Printf("Error logging entry for habit %s: %v", habitID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save entry",
		})
	}

	return c.JSON(entry)
}
