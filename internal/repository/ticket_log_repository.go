package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketLogRepository stores the append-only audit trail. Entries are never
// updated; DeleteByTicket exists solely for the ticket-delete cascade.
type TicketLogRepository interface {
	Create(ctx context.Context, entry *domain.TicketLogEntry) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketLogEntry, error)
	DeleteByTicket(ctx context.Context, ticketID string) error
}

type ticketLogRepository struct {
	pool *pgxpool.Pool
}

// NewTicketLogRepository builds the Postgres repository.
func NewTicketLogRepository(pool *pgxpool.Pool) TicketLogRepository {
	return &ticketLogRepository{pool: pool}
}

func (r *ticketLogRepository) Create(ctx context.Context, entry *domain.TicketLogEntry) error {
	const query = `
        INSERT INTO ticket_logs (id, ticket_id, actor_id, actor_name, log_type, message, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, COALESCE($7, NOW()))
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.TicketID,
		entry.ActorID,
		entry.ActorName,
		entry.Type,
		entry.Message,
		timestampOrNil(entry.CreatedAt),
	).Scan(&entry.CreatedAt)
}

func (r *ticketLogRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketLogEntry, error) {
	const query = `
        SELECT id, ticket_id, actor_id, actor_name, log_type, message, created_at
        FROM ticket_logs WHERE ticket_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketLogEntry
	for rows.Next() {
		var entry domain.TicketLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketID,
			&entry.ActorID,
			&entry.ActorName,
			&entry.Type,
			&entry.Message,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *ticketLogRepository) DeleteByTicket(ctx context.Context, ticketID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ticket_logs WHERE ticket_id=$1`, ticketID)
	return err
}
