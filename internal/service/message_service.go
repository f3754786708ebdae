package service

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// MessageService serves a user's notification inbox. Every operation is scoped
// to the calling user; nobody can read or touch another user's messages.
type MessageService struct {
	messages repository.MessageRepository
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Inbox lists the caller's messages, newest first.
func (s *MessageService) Inbox(ctx context.Context, userID string) ([]domain.Message, error) {
	list, err := s.messages.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	return list, nil
}

// MarkRead flags one of the caller's messages as read.
func (s *MessageService) MarkRead(ctx context.Context, userID, messageID string) error {
	if err := s.ownMessage(ctx, userID, messageID); err != nil {
		return err
	}
	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("message", map[string]any{"message_id": messageID})
		}
		return util.NewStoreError(err)
	}
	return nil
}

// Delete removes one of the caller's messages.
func (s *MessageService) Delete(ctx context.Context, userID, messageID string) error {
	if err := s.ownMessage(ctx, userID, messageID); err != nil {
		return err
	}
	if err := s.messages.Delete(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("message", map[string]any{"message_id": messageID})
		}
		return util.NewStoreError(err)
	}
	return nil
}

// ownMessage reports NotFound for messages that do not belong to the caller,
// so foreign message ids are indistinguishable from missing ones.
func (s *MessageService) ownMessage(ctx context.Context, userID, messageID string) error {
	list, err := s.messages.ListByRecipient(ctx, userID)
	if err != nil {
		return util.NewStoreError(err)
	}
	for i := range list {
		if list[i].ID == messageID {
			return nil
		}
	}
	return util.NewNotFound("message", map[string]any{"message_id": messageID})
}
