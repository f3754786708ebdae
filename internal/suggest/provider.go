// Package suggest defines the optional ticket-suggestion capability. The core
// ticket logic depends only on the Provider interface; any failure is caught
// at the boundary and never blocks ticket creation.
package suggest

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// Input carries the free text the provider classifies.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Suggestion holds proposed triage values. Empty fields mean no proposal.
type Suggestion struct {
	Category domain.TicketCategory `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
	Summary  string                `json:"summary"`
}

// Provider suggests ticket classification from free text. A nil suggestion
// with nil error means the provider had nothing to offer.
type Provider interface {
	Suggest(ctx context.Context, input Input) (*Suggestion, error)
}

// Noop is the provider used when suggestions are disabled.
type Noop struct{}

// Suggest always returns nothing.
func (Noop) Suggest(ctx context.Context, input Input) (*Suggestion, error) {
	return nil, nil
}
