package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// KeyAllocator allocates per-day ticket sequence numbers from the ticket_seqs
// counter table. The counter only moves forward, so sequence numbers freed by
// deleted tickets are never handed out again. Used when Postgres is
// configured but Redis is not.
type KeyAllocator struct {
	pool *pgxpool.Pool
}

// NewKeyAllocator builds the Postgres-backed allocator.
func NewKeyAllocator(pool *pgxpool.Pool) *KeyAllocator {
	return &KeyAllocator{pool: pool}
}

// NextSequence increments and returns the counter for the given YYYYMMDD day
// key, starting at 1 for a day's first ticket.
func (a *KeyAllocator) NextSequence(ctx context.Context, day string) (int, error) {
	const query = `
        INSERT INTO ticket_seqs (day, seq) VALUES ($1, 1)
        ON CONFLICT (day) DO UPDATE SET seq = ticket_seqs.seq + 1
        RETURNING seq`
	var seq int
	if err := a.pool.QueryRow(ctx, query, day).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

// Advance raises the day counter to at least seq. Snapshot imports call this
// so later keys skip the ids the snapshot already carries.
func (a *KeyAllocator) Advance(ctx context.Context, day string, seq int) error {
	const query = `
        INSERT INTO ticket_seqs (day, seq) VALUES ($1, $2)
        ON CONFLICT (day) DO UPDATE SET seq = GREATEST(ticket_seqs.seq, EXCLUDED.seq)`
	_, err := a.pool.Exec(ctx, query, day, seq)
	return err
}
