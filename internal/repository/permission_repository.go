package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// PermissionRepository persists the per-role permission sets. Sets are only
// ever overwritten, never deleted.
type PermissionRepository interface {
	Load(ctx context.Context) (map[domain.Role][]domain.Permission, error)
	Save(ctx context.Context, role domain.Role, perms []domain.Permission) error
}

type permissionRepository struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository builds the Postgres repository.
func NewPermissionRepository(pool *pgxpool.Pool) PermissionRepository {
	return &permissionRepository{pool: pool}
}

func (r *permissionRepository) Load(ctx context.Context) (map[domain.Role][]domain.Permission, error) {
	const query = `SELECT role, permission FROM role_permissions ORDER BY role, permission`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.Role][]domain.Permission)
	for rows.Next() {
		var role domain.Role
		var perm domain.Permission
		if err := rows.Scan(&role, &perm); err != nil {
			return nil, err
		}
		result[role] = append(result[role], perm)
	}
	return result, rows.Err()
}

func (r *permissionRepository) Save(ctx context.Context, role domain.Role, perms []domain.Permission) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role=$1`, role); err != nil {
		return err
	}
	for _, perm := range perms {
		if _, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role, permission) VALUES ($1,$2)`, role, perm); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
