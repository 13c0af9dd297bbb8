package logger_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"restaurant-inventory/internal/utils/logger"
)

func TestFromContextFallsBackToProcessLogger(t *testing.T) {
	assert.NotNil(t, logger.FromContext(context.Background()))

	l := zap.NewExample()
	ctx := logger.WithContext(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))
}

func TestInitLoggerToleratesBadLevel(t *testing.T) {
	l, err := logger.InitLogger("production", "chatty")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestMiddlewareTagsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(logger.Middleware(zap.New(core)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		logger.FromContext(c.UserContext()).Info("inside")
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(logger.RequestIDKey, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "req-1", e.ContextMap()["request_id"])
	}
	assert.EqualValues(t, fiber.StatusNoContent, entries[1].ContextMap()["status"])
}
