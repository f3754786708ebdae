package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// PermissionsHandler exposes the role permission matrix. Routes are gated by
// manage_settings.
type PermissionsHandler struct {
	permissions *rbac.Service
}

// NewPermissionsHandler constructs handler.
func NewPermissionsHandler(permissions *rbac.Service) *PermissionsHandler {
	return &PermissionsHandler{permissions: permissions}
}

// Get GET /admin/permissions/:role.
func (h *PermissionsHandler) Get(c *fiber.Ctx) error {
	role, err := parseRole(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RolePermissionsResponse{
		Role:        role,
		Permissions: h.permissions.PermissionsFor(role),
	}})
}

// Update PUT /admin/permissions/:role. Replaces the role's whole set. Updates
// aimed at ADMIN are accepted and ignored; ADMIN always keeps the full catalog.
func (h *PermissionsHandler) Update(c *fiber.Ctx) error {
	role, err := parseRole(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePermissionsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.permissions.UpdatePermissions(c.Context(), role, req.Permissions); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RolePermissionsResponse{
		Role:        role,
		Permissions: h.permissions.PermissionsFor(role),
	}})
}

// Toggle POST /admin/permissions/:role/toggle. Flips one permission.
func (h *PermissionsHandler) Toggle(c *fiber.Ctx) error {
	role, err := parseRole(c)
	if err != nil {
		return err
	}
	var req dto.TogglePermissionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	if !req.Permission.IsKnown() {
		return util.NewValidationError("unknown permission", map[string]any{"permission": req.Permission})
	}
	if err := h.permissions.TogglePermission(c.Context(), role, req.Permission); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RolePermissionsResponse{
		Role:        role,
		Permissions: h.permissions.PermissionsFor(role),
	}})
}

func parseRole(c *fiber.Ctx) (domain.Role, error) {
	role := domain.Role(c.Params("role"))
	if !role.IsValid() {
		return "", util.NewValidationError("unknown role", map[string]any{"role": role})
	}
	return role, nil
}
