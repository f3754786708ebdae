package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
)

// ReportsHandler serves aggregate ticket reporting.
type ReportsHandler struct {
	tickets *service.TicketService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(ticketService *service.TicketService) *ReportsHandler {
	return &ReportsHandler{tickets: ticketService}
}

// Summary GET /reports/summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	summary, err := h.tickets.Summarize(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}
