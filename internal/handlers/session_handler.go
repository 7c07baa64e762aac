package handlers

import (
	"log"
	"time"

	"habitnow/internal/middleware"
	"habitnow/internal/services"
	"habitnow/pkg/identity"

	"github.com/gofiber/fiber/v2"
)

// sessionMaxAge matches the lifetime of sessions issued by the users service.
const sessionMaxAge = 60 * 24 * 60 * 60 // 60 days, in seconds

// SessionHandler handles the session boundary: OAuth hand-off, session
// establishment, the current-user echo and logout. All of it delegates to the
// external users service; no session state is kept here.
type SessionHandler struct {
	service *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// RegisterRoutes registers the session routes. Only /users/me runs behind the
// session middleware; the rest must be reachable while logged out.
func (h *SessionHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/oauth/google/redirect_url", h.HandleOAuthRedirectURL)
	router.Post("/sessions", h.HandleCreateSession)
	router.Get("/users/me", authRequired, h.HandleCurrentUser)
	router.Get("/logout", h.HandleLogout)
}

// HandleOAuthRedirectURL returns the OAuth consent URL the web client should
// send the browser to.
func (h *SessionHandler) HandleOAuthRedirectURL(c *fiber.Ctx) error {
	redirectURL, err := h.service.OAuthRedirectURL("google")
	if err != nil {
		log.Printf("Error getting OAuth redirect URL: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get redirect URL",
		})
	}
	return c.JSON(fiber.Map{
		"redirectUrl": redirectURL,
	})
}

// HandleCreateSession exchanges an OAuth authorization code for a session
// token and sets the session cookie.
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing create session request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if body.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no authorization code provided",
		})
	}

	token, err := h.service.EstablishSession(body.Code)
	if err != nil {
		log.Printf("Error establishing session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to establish session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     identity.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleCurrentUser echoes the user resolved by the session middleware.
func (h *SessionHandler) HandleCurrentUser(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	return c.JSON(user)
}

// HandleLogout revokes the remote session when a cookie is present and clears
// the cookie either way. Logging out an already logged-out caller succeeds.
func (h *SessionHandler) HandleLogout(c *fiber.Ctx) error {
	token := c.Cookies(identity.SessionCookieName)
	if token != "" {
		if err := h.service.Logout(token); err != nil {
			// The cookie is cleared regardless; a stale remote session will
			// expire on its own.
			log.Printf("Error deleting remote session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     identity.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
	})
}
