package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SchemaVersion is the schema version the running code expects.
const SchemaVersion = 3

// ErrSchemaTooNew is returned when the stored schema version is newer than
// the running code. Loading must fail rather than touch data it does not
// understand.
type ErrSchemaTooNew struct {
	Stored  int
	Current int
}

func (e *ErrSchemaTooNew) Error() string {
	return fmt.Sprintf("stored schema version %d is newer than supported version %d", e.Stored, e.Current)
}

type migration struct {
	Version    int
	Statements []string
}

var migrations = []migration{
	{
		Version: 1,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
                id TEXT PRIMARY KEY,
                name TEXT NOT NULL,
                email TEXT NOT NULL UNIQUE,
                password_hash TEXT NOT NULL,
                role TEXT NOT NULL,
                department TEXT NOT NULL DEFAULT '',
                active BOOLEAN NOT NULL DEFAULT TRUE,
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
            )`,
			`CREATE TABLE IF NOT EXISTS tickets (
                id TEXT PRIMARY KEY,
                title TEXT NOT NULL,
                description TEXT NOT NULL,
                category TEXT NOT NULL,
                priority TEXT NOT NULL,
                status TEXT NOT NULL,
                requester_id TEXT NOT NULL,
                requester_name TEXT NOT NULL,
                assignee_id TEXT,
                assignee_name TEXT,
                problems TEXT NOT NULL DEFAULT '',
                troubleshoot TEXT NOT NULL DEFAULT '',
                remarks TEXT NOT NULL DEFAULT '',
                tags TEXT[] NOT NULL DEFAULT '{}',
                attachments JSONB NOT NULL DEFAULT '[]',
                edit_unlocked BOOLEAN NOT NULL DEFAULT FALSE,
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                closed_at TIMESTAMPTZ
            )`,
			`CREATE TABLE IF NOT EXISTS ticket_logs (
                id TEXT PRIMARY KEY,
                ticket_id TEXT NOT NULL,
                actor_id TEXT NOT NULL,
                actor_name TEXT NOT NULL,
                log_type TEXT NOT NULL,
                message TEXT NOT NULL,
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
            )`,
			`CREATE INDEX IF NOT EXISTS idx_ticket_logs_ticket ON ticket_logs (ticket_id, created_at)`,
			`CREATE TABLE IF NOT EXISTS role_permissions (
                role TEXT NOT NULL,
                permission TEXT NOT NULL,
                PRIMARY KEY (role, permission)
            )`,
		},
	},
	{
		Version: 2,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS messages (
                id TEXT PRIMARY KEY,
                recipient_id TEXT NOT NULL,
                ticket_id TEXT,
                subject TEXT NOT NULL,
                body TEXT NOT NULL,
                read BOOLEAN NOT NULL DEFAULT FALSE,
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
            )`,
			`CREATE INDEX IF NOT EXISTS idx_messages_recipient ON messages (recipient_id, created_at)`,
		},
	},
	{
		Version: 3,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS ticket_seqs (
                day TEXT PRIMARY KEY,
                seq INTEGER NOT NULL
            )`,
		},
	},
}

// Pending returns the migrations that must run on top of the stored version,
// in order. A stored version newer than the code fails with ErrSchemaTooNew.
func Pending(stored int) ([]migration, error) {
	if stored > SchemaVersion {
		return nil, &ErrSchemaTooNew{Stored: stored, Current: SchemaVersion}
	}
	var pending []migration
	for _, m := range migrations {
		if m.Version > stored {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// RunMigrations brings the database schema up to SchemaVersion before any
// repository touches the data.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	if _, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INT NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_version table: %w", err)
	}

	var stored int
	if err := pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&stored); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	pending, err := Pending(stored)
	if err != nil {
		return err
	}

	for _, m := range pending {
		logger.Info("applying migration", zap.Int("version", m.Version))
		for _, stmt := range m.Statements {
			if _, err := pool.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply migration %d: %w", m.Version, err)
			}
		}
		if _, err := pool.Exec(ctx, `DELETE FROM schema_version`); err != nil {
			return fmt.Errorf("stamp migration %d: %w", m.Version, err)
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO schema_version (version) VALUES ($1)`, m.Version); err != nil {
			return fmt.Errorf("stamp migration %d: %w", m.Version, err)
		}
	}

	logger.Info("schema up to date", zap.Int("version", SchemaVersion))
	return nil
}
