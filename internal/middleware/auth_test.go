package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestApp(t *testing.T) (*fiber.App, *auth.Manager) {
	t.Helper()
	m := auth.NewManager("test-secret", time.Hour)
	InitAuth(m)

	app := fiber.New()
	app.Get("/private", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	return app, m
}

func TestAuthRequired(t *testing.T) {
	app, m := authTestApp(t)
	token, err := m.IssueToken(auth.Identity{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	t.Run("no credentials", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
