package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/pkg/report"
)

type (
	ReportHandler interface {
		View(slug string) fiber.Handler
		Download(c *fiber.Ctx) error
		Publish(c *fiber.Ctx) error
		Mail(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) View(slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.reportService.Rows(c.UserContext(), slug)
		if err != nil {
			return presenters.FailureResponse(c, domain.MessageFailedGetReport, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
	}
}

func (h *reportHandler) Download(c *fiber.Ctx) error {
	slug := c.Params("view")
	data, err := h.reportService.CSV(c.UserContext(), slug)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetReport, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, slug))
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *reportHandler) Publish(c *fiber.Ctx) error {
	res, err := h.reportService.Publish(c.UserContext(), c.Params("view"))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedPublishReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPublishReport)
}

func (h *reportHandler) Mail(c *fiber.Ctx) error {
	req := new(domain.MailReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedBodyRequest, invalidInput(c.Params("view"), err))
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedMailReport, invalidInput(c.Params("view"), err))
	}

	if err := h.reportService.Mail(c.UserContext(), c.Params("view"), req.To); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedMailReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMailReport)
}
