package domain

import "time"

// TicketLogType tags what kind of event a log entry records.
type TicketLogType string

const (
	LogTypeComment      TicketLogType = "COMMENT"
	LogTypeStatusChange TicketLogType = "STATUS_CHANGE"
	LogTypeSystem       TicketLogType = "SYSTEM"
)

// TicketLogEntry is an immutable audit record attached to a ticket. Entries
// are never mutated; they are removed only when their owning ticket is deleted.
type TicketLogEntry struct {
	ID        string
	TicketID  string
	ActorID   string
	ActorName string
	Type      TicketLogType
	Message   string
	CreatedAt time.Time
}
