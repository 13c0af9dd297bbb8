package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		Status   bool   `json:"status"`
		Message  string `json:"message"`
		Error    string `json:"error"`
		Code     string `json:"code,omitempty"`
		Guidance string `json:"guidance,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := ErrorBody{Status: false, Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	var f *domain.Failure
	if errors.As(err, &f) {
		body.Code = string(f.Kind)
		body.Guidance = f.Guidance
	}
	return c.Status(statusCode).JSON(body)
}

// FailureResponse answers with the status that belongs to the error's kind.
func FailureResponse(c *fiber.Ctx, message string, err error) error {
	f := domain.AsFailure(err)
	return ErrorResponse(c, StatusFor(f.Kind), message, f)
}

func StatusFor(kind domain.FailureKind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindReferenceMissing, domain.KindDependentsExist:
		return fiber.StatusConflict
	case domain.KindInvalidComputation:
		return fiber.StatusUnprocessableEntity
	case domain.KindInvalidInput:
		return fiber.StatusBadRequest
	case domain.KindPoolTimeout:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
