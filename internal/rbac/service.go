// Package rbac answers "can role R perform action A?" and allows controlled
// editing of that answer for non-privileged roles. One rule is absolute: the
// ADMIN set always equals the full permission catalog and cannot be changed
// through the update path.
package rbac

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// Service holds the per-role permission sets. Constructed once at startup and
// injected into every consumer; reads are lock-protected, writes go through
// the repository so the configuration survives restarts.
type Service struct {
	repo   repository.PermissionRepository
	logger *zap.Logger

	mu   sync.RWMutex
	sets map[domain.Role]map[domain.Permission]struct{}
}

// NewService loads persisted sets, seeding defaults for any role not yet
// stored. The ADMIN set is re-asserted to the full catalog regardless of what
// was persisted.
func NewService(ctx context.Context, repo repository.PermissionRepository, logger *zap.Logger) (*Service, error) {
	s := &Service{
		repo:   repo,
		logger: logger,
		sets:   make(map[domain.Role]map[domain.Permission]struct{}),
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, util.NewStoreError(err)
	}

	defaults := domain.DefaultPermissions()
	for _, role := range domain.Roles() {
		perms, ok := stored[role]
		if !ok {
			perms = defaults[role]
			if err := repo.Save(ctx, role, perms); err != nil {
				return nil, util.NewStoreError(err)
			}
			logger.Info("seeded default permissions", zap.String("role", string(role)))
		}
		s.sets[role] = toSet(perms)
	}

	// The stored ADMIN row may predate catalog additions; force the full set.
	s.sets[domain.RoleAdmin] = toSet(domain.PermissionCatalog())

	return s, nil
}

// HasPermission reports whether the role currently holds the permission.
// An empty or unknown role always answers false.
func (s *Service) HasPermission(role domain.Role, perm domain.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[role]
	if !ok {
		return false
	}
	_, held := set[perm]
	return held
}

// HasAny reports whether the role holds at least one of the permissions.
func (s *Service) HasAny(role domain.Role, perms ...domain.Permission) bool {
	for _, perm := range perms {
		if s.HasPermission(role, perm) {
			return true
		}
	}
	return false
}

// UpdatePermissions replaces the stored set for a role. Attempts to change
// ADMIN are ignored: the lockout-prevention guard, not an error. Unknown
// permission identifiers are dropped silently.
func (s *Service) UpdatePermissions(ctx context.Context, role domain.Role, perms []domain.Permission) error {
	if role == domain.RoleAdmin {
		s.logger.Warn("ignored attempt to modify ADMIN permissions")
		return nil
	}
	if !role.IsValid() {
		return nil
	}

	filtered := make([]domain.Permission, 0, len(perms))
	for _, perm := range perms {
		if perm.IsKnown() {
			filtered = append(filtered, perm)
		}
	}

	if err := s.repo.Save(ctx, role, filtered); err != nil {
		return util.NewStoreError(err)
	}

	s.mu.Lock()
	s.sets[role] = toSet(filtered)
	s.mu.Unlock()

	s.logger.Info("updated role permissions",
		zap.String("role", string(role)),
		zap.Int("count", len(filtered)))
	return nil
}

// TogglePermission flips membership of one permission for a role.
func (s *Service) TogglePermission(ctx context.Context, role domain.Role, perm domain.Permission) error {
	current := s.PermissionsFor(role)
	found := false
	next := make([]domain.Permission, 0, len(current)+1)
	for _, p := range current {
		if p == perm {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		next = append(next, perm)
	}
	return s.UpdatePermissions(ctx, role, next)
}

// PermissionsFor returns the role's current set in catalog order.
func (s *Service) PermissionsFor(role domain.Role) []domain.Permission {
	s.mu.RLock()
	set, ok := s.sets[role]
	if !ok {
		s.mu.RUnlock()
		return nil
	}
	result := make([]domain.Permission, 0, len(set))
	for perm := range set {
		result = append(result, perm)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func toSet(perms []domain.Permission) map[domain.Permission]struct{} {
	set := make(map[domain.Permission]struct{}, len(perms))
	for _, perm := range perms {
		set[perm] = struct{}{}
	}
	return set
}
