package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/pkg/util"
	"github.com/spec-kit/helpdesk-service/pkg/validate"
)

func currentActor(c *fiber.Ctx) (service.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return service.Actor{}, util.NewUnauthorized("authentication required")
	}
	return service.Actor{
		ID:   principal.User.ID,
		Name: principal.User.Name,
		Role: principal.User.Role,
	}, nil
}

func parseAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if errs := validate.Struct(out); len(errs) > 0 {
		return util.NewValidationError("validation failed", validate.Details(errs))
	}
	return nil
}

func ticketSummary(ticket *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:            ticket.ID,
		Title:         ticket.Title,
		Category:      ticket.Category,
		Priority:      ticket.Priority,
		Status:        ticket.Status,
		RequesterID:   ticket.RequesterID,
		RequesterName: ticket.RequesterName,
		AssigneeID:    ticket.AssigneeID,
		AssigneeName:  ticket.AssigneeName,
		Tags:          ticket.Tags,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
}

func ticketDetail(ticket *domain.Ticket, logs []domain.TicketLogEntry) dto.TicketDetailResponse {
	logResponses := make([]dto.TicketLogResponse, 0, len(logs))
	for _, entry := range logs {
		logResponses = append(logResponses, dto.TicketLogResponse{
			ID:        entry.ID,
			Type:      entry.Type,
			ActorID:   entry.ActorID,
			ActorName: entry.ActorName,
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		})
	}
	return dto.TicketDetailResponse{
		TicketSummary: ticketSummary(ticket),
		Description:   ticket.Description,
		Problems:      ticket.Problems,
		Troubleshoot:  ticket.Troubleshoot,
		Remarks:       ticket.Remarks,
		Attachments:   ticket.Attachments,
		EditUnlocked:  ticket.EditUnlocked,
		ClosedAt:      ticket.ClosedAt,
		Logs:          logResponses,
	}
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Active:     user.Active,
		CreatedAt:  user.CreatedAt,
	}
}
