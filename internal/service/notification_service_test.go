package service_test

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

func TestNotificationsFlowIntoInbox(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	e := newEnv(t, func(deps *service.TicketDependencies) { deps.Dispatcher = dispatcher })
	service.NewNotificationService(dispatcher, e.store.Messages(), zap.NewNop()).RegisterHandlers()
	ctx := context.Background()

	ticket := e.create(t, employee, "fan noise")
	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Comment(ctx, tech, ticket.ID, "swapping the fan"); err != nil {
		t.Fatal(err)
	}

	inbox, err := e.store.Messages().ListByRecipient(ctx, employee.ID)
	if err != nil {
		t.Fatal(err)
	}
	// created, status change, assignment, comment
	if len(inbox) != 4 {
		for _, m := range inbox {
			t.Logf("%s: %s", m.Subject, m.Body)
		}
		t.Fatalf("requester inbox has %d messages, want 4", len(inbox))
	}
	for _, m := range inbox {
		if m.TicketID == nil || *m.TicketID != ticket.ID {
			t.Errorf("message %q not linked to ticket", m.Subject)
		}
	}

	// The technician acted; they get nothing about their own actions.
	techInbox, err := e.store.Messages().ListByRecipient(ctx, tech.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(techInbox) != 0 {
		t.Errorf("actor received %d self-notifications", len(techInbox))
	}
}

func TestRequesterCommentNotifiesAssignee(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	e := newEnv(t, func(deps *service.TicketDependencies) { deps.Dispatcher = dispatcher })
	service.NewNotificationService(dispatcher, e.store.Messages(), zap.NewNop()).RegisterHandlers()
	ctx := context.Background()

	ticket := e.create(t, employee, "vpn drops")
	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Comment(ctx, employee, ticket.ID, "happens on wifi only"); err != nil {
		t.Fatal(err)
	}

	inbox, err := e.store.Messages().ListByRecipient(ctx, tech.ID)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range inbox {
		if strings.Contains(m.Subject, "comment") {
			found = true
		}
	}
	if !found {
		t.Error("assignee not notified about requester comment")
	}
}
