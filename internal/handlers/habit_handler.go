package handlers

import (
	"log"

	"habitnow/internal/middleware"
	"habitnow/internal/models"
	"habitnow/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HabitHandler handles HTTP requests for habits.
type HabitHandler struct {
	service  *services.HabitService
	validate *validator.Validate
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(service *services.HabitService) *HabitHandler {
	return &HabitHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the habit routes with the Fiber app. The router is
// expected to carry the session middleware already.
func (h *HabitHandler) RegisterRoutes(router fiber.Router) {
	habitRoutes := router.Group("/habits")
	habitRoutes.Get("/", h.HandleListHabits)
	habitRoutes.Post("/", h.HandleCreateHabit)
}

// HandleListHabits returns the caller's active habits, newest first.
func (h *HabitHandler) HandleListHabits(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	habits, err := h.service.ListHabits(user.ID)
	if err != nil {
		log.Printf("Error listing habits for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch habits",
		})
	}
	return c.JSON(habits)
}

// HandleCreateHabit creates a new habit owned by the caller. Ownership comes
// from the resolved session only; any user_id in the payload is ignored.
func (h *HabitHandler) HandleCreateHabit(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	var req models.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create habit request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErrorMessage(err),
		})
	}

	habit, err := h.service.CreateHabit(user.ID, req)
	if err != nil {
		log.Printf("Error creating habit for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create habit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}
