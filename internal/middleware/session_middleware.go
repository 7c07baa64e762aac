package middleware

import (
	"log"

	"habitnow/internal/models"
	"habitnow/internal/services"
	"habitnow/pkg/identity"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by SessionRequired for downstream handlers.
const (
	LocalsUser   = "user"
	LocalsUserID = "user_id"
)

// SessionRequired is a Fiber middleware that resolves the session cookie to a
// user before any handler runs. A missing or unresolvable cookie yields 401;
// whether the token was absent, expired or revoked is not distinguished, so a
// logged-out caller learns nothing about server-side state.
func SessionRequired(sessionService *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(identity.SessionCookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		user, err := sessionService.ResolveSession(token)
		if err != nil {
			log.Printf("Session resolution failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		// Store the identity in Fiber context for subsequent handlers.
		c.Locals(LocalsUser, user)
		c.Locals(LocalsUserID, user.ID)

		return c.Next()
	}
}

// UserFromContext returns the user resolved by SessionRequired. The boolean
// is false when the middleware did not run for this route.
func UserFromContext(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(LocalsUser).(*models.User)
	return user, ok
}
