package events

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketCommentAdded  EventType = "ticket_comment_added"
	EventTicketTriageUpdated EventType = "ticket_triage_updated"
	EventTicketDeleted       EventType = "ticket_deleted"
)

// Actor encapsulates the user behind an event.
type Actor struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	RequesterID string                `json:"requester_id"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
	Title       string                `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	RequesterID string              `json:"requester_id"`
	AssigneeID  *string             `json:"assignee_id,omitempty"`
	OldStatus   domain.TicketStatus `json:"old_status"`
	NewStatus   domain.TicketStatus `json:"new_status"`
	Comment     string              `json:"comment,omitempty"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	RequesterID  string `json:"requester_id"`
	AssigneeID   string `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	RequesterID string  `json:"requester_id"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	BodyPreview string  `json:"body_preview"`
}

// TicketTriageUpdatedPayload payload.
type TicketTriageUpdatedPayload struct {
	RequesterID string   `json:"requester_id"`
	Fields      []string `json:"fields"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	RequesterID string `json:"requester_id"`
	Title       string `json:"title"`
}
