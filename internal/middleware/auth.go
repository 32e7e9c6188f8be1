package middleware

import (
	"inkwell/internal/auth"

	"github.com/gofiber/fiber/v2"
)

var tokens *auth.Manager

// InitAuth initializes the auth middleware with the given token manager.
func InitAuth(m *auth.Manager) {
	tokens = m
}

// AuthRequired enforces authentication for protected routes. It accepts a
// bearer token in the Authorization header or the httpOnly "token" cookie,
// preferring the header when both are present.
func AuthRequired(c *fiber.Ctx) error {
	identity, ok := tokens.ResolveRequestIdentity(c.Get("Authorization"), c.Cookies("token"))
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
			"code":  "UNAUTHORIZED",
		})
	}

	c.Locals("userID", identity.ID)
	c.Locals("identity", identity)

	return c.Next()
}
