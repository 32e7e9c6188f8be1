package server

import (
	"time"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to their HTTP status and standard body.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// currentUserID returns the authenticated user's ID from locals, or "" when
// the request is anonymous.
func currentUserID(c *fiber.Ctx) string {
	if uid, ok := c.Locals("userID").(string); ok {
		return uid
	}
	return ""
}

// setAuthCookie mirrors the issued token into an httpOnly cookie so browser
// clients stay signed in without storing the token in script-reachable state.
func (s *Server) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.Env == "production",
		Path:     "/",
	})
}

// clearAuthCookie expires the auth cookie.
func (s *Server) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.Env == "production",
		Path:     "/",
	})
}
