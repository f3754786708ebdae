package service_test

import (
	"context"
	"testing"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository/memory"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

func seedInbox(t *testing.T) (*service.MessageService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for _, m := range []domain.Message{
		{ID: "m1", RecipientID: "alice", Subject: "one", Body: "first"},
		{ID: "m2", RecipientID: "alice", Subject: "two", Body: "second"},
		{ID: "m3", RecipientID: "bob", Subject: "three", Body: "third"},
	} {
		msg := m
		if err := store.Messages().Append(ctx, &msg); err != nil {
			t.Fatal(err)
		}
	}
	return service.NewMessageService(store.Messages()), store
}

func TestInboxScopedToRecipient(t *testing.T) {
	svc, _ := seedInbox(t)

	inbox, err := svc.Inbox(context.Background(), "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(inbox) != 2 {
		t.Errorf("alice sees %d messages, want 2", len(inbox))
	}
	for _, m := range inbox {
		if m.RecipientID != "alice" {
			t.Errorf("foreign message %s in inbox", m.ID)
		}
	}
}

func TestMarkReadOwnershipGuard(t *testing.T) {
	svc, store := seedInbox(t)
	ctx := context.Background()

	if err := svc.MarkRead(ctx, "alice", "m3"); !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("marking bob's message: %v", err)
	}
	if err := svc.MarkRead(ctx, "alice", "m1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	inbox, _ := store.Messages().ListByRecipient(ctx, "alice")
	for _, m := range inbox {
		if m.ID == "m1" && !m.Read {
			t.Error("m1 still unread")
		}
	}
}

func TestDeleteOwnershipGuard(t *testing.T) {
	svc, _ := seedInbox(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, "alice", "m3"); !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("deleting bob's message: %v", err)
	}
	if err := svc.Delete(ctx, "alice", "m2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	inbox, err := svc.Inbox(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(inbox) != 1 || inbox[0].ID != "m1" {
		t.Errorf("inbox after delete = %+v", inbox)
	}
	if err := svc.Delete(ctx, "alice", "m2"); !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("double delete: %v", err)
	}
}
