package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	s.setAuthCookie(c, result.Token)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	s.setAuthCookie(c, result.Token)
	return c.JSON(result)
}

// CheckAuth handles GET /api/auth/check. A missing or invalid token is a
// 401 with authenticated=false so clients can branch on either signal.
func (s *Server) CheckAuth(c *fiber.Ctx) error {
	identity, ok := s.tokens.ResolveRequestIdentity(c.Get("Authorization"), c.Cookies("token"))
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false, "user": nil})
	}

	user, err := s.authService.CheckAuth(c.Context(), identity)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false, "user": nil})
	}

	return c.JSON(fiber.Map{"authenticated": true, "user": user})
}

// Logout handles POST /api/auth/logout by expiring the auth cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}
