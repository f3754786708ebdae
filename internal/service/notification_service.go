package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// NotificationService turns ticket events into inbox messages for the people
// involved. Delivery failures are logged, never propagated.
type NotificationService struct {
	dispatcher events.Dispatcher
	messages   repository.MessageRepository
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, messages repository.MessageRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to ticket events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleAssigned)
	n.dispatcher.Subscribe(events.EventTicketCommentAdded, n.handleCommentAdded)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	n.deliver(ctx, payload.RequesterID, event.TicketID,
		fmt.Sprintf("Ticket %s created", event.TicketID),
		fmt.Sprintf("Your ticket %q was submitted and is awaiting triage.", payload.Title))
	return nil
}

func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	body := fmt.Sprintf("Status moved from %s to %s.", payload.OldStatus, payload.NewStatus)
	if payload.Comment != "" {
		body += " " + payload.Comment
	}
	if event.Actor.ID != payload.RequesterID {
		n.deliver(ctx, payload.RequesterID, event.TicketID,
			fmt.Sprintf("Ticket %s updated", event.TicketID), body)
	}
	if payload.AssigneeID != nil && *payload.AssigneeID != event.Actor.ID {
		n.deliver(ctx, *payload.AssigneeID, event.TicketID,
			fmt.Sprintf("Ticket %s updated", event.TicketID), body)
	}
	return nil
}

func (n *NotificationService) handleAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok {
		return nil
	}
	n.deliver(ctx, payload.RequesterID, event.TicketID,
		fmt.Sprintf("Ticket %s assigned", event.TicketID),
		fmt.Sprintf("%s is now working on your ticket.", payload.AssigneeName))
	return nil
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCommentAddedPayload)
	if !ok {
		return nil
	}
	subject := fmt.Sprintf("New comment on ticket %s", event.TicketID)
	if event.Actor.ID != payload.RequesterID {
		n.deliver(ctx, payload.RequesterID, event.TicketID, subject, payload.BodyPreview)
	}
	if payload.AssigneeID != nil && *payload.AssigneeID != event.Actor.ID {
		n.deliver(ctx, *payload.AssigneeID, event.TicketID, subject, payload.BodyPreview)
	}
	return nil
}

func (n *NotificationService) deliver(ctx context.Context, recipientID, ticketID, subject, body string) {
	ticketRef := ticketID
	message := &domain.Message{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		TicketID:    &ticketRef,
		Subject:     subject,
		Body:        body,
	}
	if err := n.messages.Append(ctx, message); err != nil {
		n.logger.Warn("failed to deliver notification",
			zap.String("recipient_id", recipientID),
			zap.String("ticket_id", ticketID),
			zap.Error(err))
	}
}
