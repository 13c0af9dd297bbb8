package presenters_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
)

func TestStatusFor(t *testing.T) {
	tests := map[domain.FailureKind]int{
		domain.KindNotFound:           fiber.StatusNotFound,
		domain.KindReferenceMissing:   fiber.StatusConflict,
		domain.KindDependentsExist:    fiber.StatusConflict,
		domain.KindInvalidComputation: fiber.StatusUnprocessableEntity,
		domain.KindInvalidInput:       fiber.StatusBadRequest,
		domain.KindPoolTimeout:        fiber.StatusServiceUnavailable,
		domain.KindGeneric:            fiber.StatusInternalServerError,
	}
	for kind, want := range tests {
		assert.Equal(t, want, presenters.StatusFor(kind), kind)
	}
}

func TestFailureResponseCarriesCodeAndGuidance(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		err := domain.NewFailure(domain.KindDependentsExist, "Category", errors.New("fk")).
			WithGuidance(domain.GuidanceCategoryDelete)
		return presenters.FailureResponse(c, "failed to delete Category", err)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body presenters.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "FOREIGN_KEY_CONSTRAINT", body.Code)
	assert.Equal(t, domain.GuidanceCategoryDelete, body.Guidance)
}

func TestFailureResponseTreatsPlainErrorsAsInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return presenters.FailureResponse(c, "boom", errors.New("broken pipe"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
