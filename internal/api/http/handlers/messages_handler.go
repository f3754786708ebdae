package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// MessagesHandler serves the caller's notification inbox.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messageService}
}

// List GET /messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	inbox, err := h.messages.Inbox(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	responses := make([]dto.MessageResponse, 0, len(inbox))
	for i := range inbox {
		message := &inbox[i]
		responses = append(responses, dto.MessageResponse{
			ID:        message.ID,
			TicketID:  message.TicketID,
			Subject:   message.Subject,
			Body:      message.Body,
			Read:      message.Read,
			CreatedAt: message.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": responses})
}

// MarkRead POST /messages/:id/read.
func (h *MessagesHandler) MarkRead(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if err := h.messages.MarkRead(c.Context(), actor.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"read": true}})
}

// Delete DELETE /messages/:id.
func (h *MessagesHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if err := h.messages.Delete(c.Context(), actor.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
