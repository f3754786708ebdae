package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusOnHold     TicketStatus = "ON_HOLD"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusVerified   TicketStatus = "VERIFIED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusOnHold,
		TicketStatusResolved, TicketStatusVerified, TicketStatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is possible.
// VERIFIED still admits the admin unlock override, which is not a transition.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusVerified || s == TicketStatusClosed
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "LOW"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityCritical TicketPriority = "CRITICAL"
)

// IsValid reports whether the priority is a known value.
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// TicketCategory classifies the kind of problem reported.
type TicketCategory string

const (
	TicketCategoryHardware TicketCategory = "HARDWARE"
	TicketCategorySoftware TicketCategory = "SOFTWARE"
	TicketCategoryNetwork  TicketCategory = "NETWORK"
	TicketCategoryAccess   TicketCategory = "ACCESS"
	TicketCategoryOther    TicketCategory = "OTHER"
)

// IsValid reports whether the category is a known value.
func (c TicketCategory) IsValid() bool {
	switch c {
	case TicketCategoryHardware, TicketCategorySoftware, TicketCategoryNetwork,
		TicketCategoryAccess, TicketCategoryOther:
		return true
	}
	return false
}

// AttachmentRef describes a file attached to a ticket. Only the reference
// metadata is tracked; there is no file storage engine behind it.
type AttachmentRef struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	URL       string `json:"url"`
}

// Ticket is the aggregate for one support request. IDs follow the
// T<YYYYMMDD>-<NN> key format with a per-day sequence.
type Ticket struct {
	ID            string
	Title         string
	Description   string
	Category      TicketCategory
	Priority      TicketPriority
	Status        TicketStatus
	RequesterID   string
	RequesterName string
	AssigneeID    *string
	AssigneeName  *string

	// Triage fields, filled in by the assigned technician.
	Problems     string
	Troubleshoot string
	Remarks      string

	Tags        []string
	Attachments []AttachmentRef

	// EditUnlocked is the admin-only override that permits triage-field
	// writes on a VERIFIED ticket without altering its status.
	EditUnlocked bool

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// Editable reports whether triage fields and comments may still be written.
func (t *Ticket) Editable() bool {
	if t.Status == TicketStatusClosed {
		return false
	}
	if t.Status == TicketStatusVerified {
		return t.EditUnlocked
	}
	return true
}

// IsAssignee reports whether the given user currently holds the ticket.
func (t *Ticket) IsAssignee(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}
