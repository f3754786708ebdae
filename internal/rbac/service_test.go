package rbac_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
	"github.com/spec-kit/helpdesk-service/internal/repository/memory"
)

func newService(t *testing.T, store *memory.Store) *rbac.Service {
	t.Helper()
	svc, err := rbac.NewService(context.Background(), store.Permissions(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestDefaultsSeededOnFirstRun(t *testing.T) {
	svc := newService(t, memory.NewStore())

	if !svc.HasPermission(domain.RoleEmployee, domain.PermCreateTicket) {
		t.Error("employee should create tickets by default")
	}
	if svc.HasPermission(domain.RoleEmployee, domain.PermEditTicket) {
		t.Error("employee should not edit tickets by default")
	}
	if !svc.HasPermission(domain.RoleTechnician, domain.PermEditTicket) {
		t.Error("technician should edit tickets by default")
	}
	for _, perm := range domain.PermissionCatalog() {
		if !svc.HasPermission(domain.RoleAdmin, perm) {
			t.Errorf("admin missing %s", perm)
		}
	}
}

func TestUpdateReflectedInChecks(t *testing.T) {
	svc := newService(t, memory.NewStore())
	ctx := context.Background()

	if svc.HasPermission(domain.RoleEmployee, domain.PermViewReports) {
		t.Fatal("precondition: employee has view_reports")
	}
	err := svc.UpdatePermissions(ctx, domain.RoleEmployee,
		[]domain.Permission{domain.PermCreateTicket, domain.PermViewReports})
	if err != nil {
		t.Fatalf("UpdatePermissions: %v", err)
	}
	if !svc.HasPermission(domain.RoleEmployee, domain.PermViewReports) {
		t.Error("grant not reflected")
	}
	if svc.HasPermission(domain.RoleEmployee, domain.PermViewDashboard) {
		t.Error("revocation not reflected; update must replace the whole set")
	}
}

func TestAdminSetIsImmutable(t *testing.T) {
	svc := newService(t, memory.NewStore())

	if err := svc.UpdatePermissions(context.Background(), domain.RoleAdmin, nil); err != nil {
		t.Fatalf("admin update should be a silent no-op, got %v", err)
	}
	for _, perm := range domain.PermissionCatalog() {
		if !svc.HasPermission(domain.RoleAdmin, perm) {
			t.Errorf("admin lost %s", perm)
		}
	}
}

func TestUnknownRoleHasNothing(t *testing.T) {
	svc := newService(t, memory.NewStore())

	if svc.HasPermission("", domain.PermViewDashboard) {
		t.Error("empty role must have no permissions")
	}
	if svc.HasPermission("MANAGER", domain.PermViewDashboard) {
		t.Error("unknown role must have no permissions")
	}
}

func TestUnknownPermissionsFiltered(t *testing.T) {
	svc := newService(t, memory.NewStore())
	ctx := context.Background()

	err := svc.UpdatePermissions(ctx, domain.RoleEmployee,
		[]domain.Permission{domain.PermCreateTicket, "fly_spaceship"})
	if err != nil {
		t.Fatalf("UpdatePermissions: %v", err)
	}
	got := svc.PermissionsFor(domain.RoleEmployee)
	if len(got) != 1 || got[0] != domain.PermCreateTicket {
		t.Errorf("unknown permission leaked into the set: %v", got)
	}
}

func TestTogglePermission(t *testing.T) {
	svc := newService(t, memory.NewStore())
	ctx := context.Background()

	if err := svc.TogglePermission(ctx, domain.RoleTechnician, domain.PermManageUsers); err != nil {
		t.Fatalf("TogglePermission: %v", err)
	}
	if !svc.HasPermission(domain.RoleTechnician, domain.PermManageUsers) {
		t.Error("toggle on failed")
	}
	if err := svc.TogglePermission(ctx, domain.RoleTechnician, domain.PermManageUsers); err != nil {
		t.Fatalf("TogglePermission: %v", err)
	}
	if svc.HasPermission(domain.RoleTechnician, domain.PermManageUsers) {
		t.Error("toggle off failed")
	}
}

func TestSetsSurviveRestart(t *testing.T) {
	store := memory.NewStore()
	svc := newService(t, store)
	ctx := context.Background()

	err := svc.UpdatePermissions(ctx, domain.RoleEmployee,
		[]domain.Permission{domain.PermCreateTicket, domain.PermViewReports})
	if err != nil {
		t.Fatalf("UpdatePermissions: %v", err)
	}

	reloaded := newService(t, store)
	if !reloaded.HasPermission(domain.RoleEmployee, domain.PermViewReports) {
		t.Error("updated set lost across restart")
	}
	if reloaded.HasPermission(domain.RoleEmployee, domain.PermViewDashboard) {
		t.Error("defaults reseeded over the stored set")
	}
}
