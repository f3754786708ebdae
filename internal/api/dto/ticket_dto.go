package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload. Status and assignee are intentionally absent:
// they are not settable at creation.
type CreateTicketRequest struct {
	Title       string                 `json:"title" validate:"required,max=200"`
	Description string                 `json:"description" validate:"required"`
	Category    domain.TicketCategory  `json:"category" validate:"omitempty,oneof=HARDWARE SOFTWARE NETWORK ACCESS OTHER"`
	Priority    domain.TicketPriority  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Tags        []string               `json:"tags"`
	Attachments []domain.AttachmentRef `json:"attachments" validate:"dive"`
}

// RejectTicketRequest payload.
type RejectTicketRequest struct {
	Reason string `json:"reason"`
}

// TriageUpdateRequest payload; omitted fields stay untouched.
type TriageUpdateRequest struct {
	Problems     *string `json:"problems"`
	Troubleshoot *string `json:"troubleshoot"`
	Remarks      *string `json:"remarks"`
}

// CommentRequest payload.
type CommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// BulkTakeRequest payload.
type BulkTakeRequest struct {
	TicketIDs []string `json:"ticket_ids" validate:"required,min=1"`
}

// TicketSummary response.
type TicketSummary struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Category      domain.TicketCategory `json:"category"`
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	RequesterID   string                `json:"requester_id"`
	RequesterName string                `json:"requester_name"`
	AssigneeID    *string               `json:"assignee_id,omitempty"`
	AssigneeName  *string               `json:"assignee_name,omitempty"`
	Tags          []string              `json:"tags"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// TicketDetailResponse provides full ticket info including the audit trail.
type TicketDetailResponse struct {
	TicketSummary
	Description  string                 `json:"description"`
	Problems     string                 `json:"problems"`
	Troubleshoot string                 `json:"troubleshoot"`
	Remarks      string                 `json:"remarks"`
	Attachments  []domain.AttachmentRef `json:"attachments"`
	EditUnlocked bool                   `json:"edit_unlocked"`
	ClosedAt     *time.Time             `json:"closed_at,omitempty"`
	Logs         []TicketLogResponse    `json:"logs"`
}

// TicketLogResponse is one audit-trail entry.
type TicketLogResponse struct {
	ID        string               `json:"id"`
	Type      domain.TicketLogType `json:"type"`
	ActorID   string               `json:"actor_id"`
	ActorName string               `json:"actor_name"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
}

// BulkTakeResponse reports a bulk assignment outcome.
type BulkTakeResponse struct {
	Taken  []string          `json:"taken"`
	Failed map[string]string `json:"failed,omitempty"`
}
