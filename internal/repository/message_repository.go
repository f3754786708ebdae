package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// MessageRepository stores the in-app notification inbox.
type MessageRepository interface {
	Append(ctx context.Context, message *domain.Message) error
	ListByRecipient(ctx context.Context, recipientID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository builds the Postgres repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Append(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (id, recipient_id, ticket_id, subject, body, read, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, COALESCE($7, NOW()))
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		message.ID,
		message.RecipientID,
		message.TicketID,
		message.Subject,
		message.Body,
		message.Read,
		timestampOrNil(message.CreatedAt),
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Message, error) {
	const query = `
        SELECT id, recipient_id, ticket_id, subject, body, read, created_at
        FROM messages WHERE recipient_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.RecipientID,
			&message.TicketID,
			&message.Subject,
			&message.Body,
			&message.Read,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE messages SET read=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
