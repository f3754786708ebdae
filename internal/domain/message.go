package domain

import "time"

// Message is an in-app inbox notification delivered to a single user, usually
// produced by the notification service in response to ticket events.
type Message struct {
	ID          string
	RecipientID string
	TicketID    *string
	Subject     string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
