package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/utils/logger"
	"restaurant-inventory/pkg/jwt"
)

func newApp(jwtService jwt.JWTService) *fiber.App {
	m := middleware.NewMiddleware()
	app := fiber.New()
	app.Use(m.RequestIDMiddleware())
	app.Use(m.AuthMiddleware(jwtService))
	handler := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/api/Category", handler)
	app.Post("/api/Category", handler)
	return app
}

func TestRequestIDAssignedWhenMissing(t *testing.T) {
	app := newApp(nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/Category", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(logger.RequestIDKey))

	req := httptest.NewRequest(fiber.MethodGet, "/api/Category", nil)
	req.Header.Set(logger.RequestIDKey, "abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Header.Get(logger.RequestIDKey))
}

func TestAuthGuardsOnlyMutations(t *testing.T) {
	svc := jwt.NewJWTService("secret")
	app := newApp(svc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/Category", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/api/Category", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := svc.GenerateToken("kitchen", domain.RoleOperator, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/api/Category", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthDisabledWithoutService(t *testing.T) {
	app := newApp(nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/Category", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
