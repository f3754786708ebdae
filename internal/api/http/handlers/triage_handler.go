package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// TriageHandler manages the technician/admin ticket workflow endpoints.
type TriageHandler struct {
	tickets *service.TicketService
}

// NewTriageHandler constructs handler.
func NewTriageHandler(ticketService *service.TicketService) *TriageHandler {
	return &TriageHandler{tickets: ticketService}
}

// Take POST /tickets/:id/take.
func (h *TriageHandler) Take(c *fiber.Ctx) error {
	return h.transition(c, h.tickets.Take)
}

// Resolve POST /tickets/:id/resolve.
func (h *TriageHandler) Resolve(c *fiber.Ctx) error {
	return h.transition(c, h.tickets.Resolve)
}

// Hold POST /tickets/:id/hold.
func (h *TriageHandler) Hold(c *fiber.Ctx) error {
	return h.transition(c, h.tickets.Hold)
}

// Reject POST /tickets/:id/reject.
func (h *TriageHandler) Reject(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.RejectTicketRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewValidationError("invalid payload", nil)
		}
	}
	ticket, err := h.tickets.Reject(c.Context(), actor, c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

// BulkTake POST /tickets/bulk/take.
func (h *TriageHandler) BulkTake(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.BulkTakeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	result := h.tickets.BulkTake(c.Context(), actor, req.TicketIDs)

	resp := dto.BulkTakeResponse{Taken: result.Taken}
	if len(result.Failed) > 0 {
		resp.Failed = make(map[string]string, len(result.Failed))
		for id, failure := range result.Failed {
			resp.Failed[id] = failure.Error()
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}

// UpdateTriage PATCH /tickets/:id/triage.
func (h *TriageHandler) UpdateTriage(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.TriageUpdateRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	ticket, err := h.tickets.UpdateTriage(c.Context(), actor, c.Params("id"), service.TriageInput{
		Problems:     req.Problems,
		Troubleshoot: req.Troubleshoot,
		Remarks:      req.Remarks,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

// Unlock POST /tickets/:id/unlock.
func (h *TriageHandler) Unlock(c *fiber.Ctx) error {
	return h.setUnlocked(c, true)
}

// Lock POST /tickets/:id/lock.
func (h *TriageHandler) Lock(c *fiber.Ctx) error {
	return h.setUnlocked(c, false)
}

func (h *TriageHandler) setUnlocked(c *fiber.Ctx, unlocked bool) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	ticket, err := h.tickets.SetUnlocked(c.Context(), actor, c.Params("id"), unlocked)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}

// Delete DELETE /tickets/:id.
func (h *TriageHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if err := h.tickets.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *TriageHandler) transition(c *fiber.Ctx, op func(ctx context.Context, actor service.Actor, id string) (*domain.Ticket, error)) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	ticket, err := op(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketSummary(ticket)})
}
