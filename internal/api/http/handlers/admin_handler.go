package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// AdminHandler exposes dataset export/import and runtime metrics. Routes are
// gated by manage_settings.
type AdminHandler struct {
	export  *service.ExportService
	metrics MetricsSource
}

// MetricsSource is the slice of the metrics registry the handler needs.
type MetricsSource interface {
	Snapshot() (requests, errors map[string]int64)
}

// NewAdminHandler constructs handler.
func NewAdminHandler(exportService *service.ExportService, metrics MetricsSource) *AdminHandler {
	return &AdminHandler{export: exportService, metrics: metrics}
}

// Export GET /admin/export streams the full dataset as JSON.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	snapshot, err := h.export.Export(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="helpdesk-export.json"`)
	return c.JSON(snapshot)
}

// Import POST /admin/import loads a previously exported snapshot.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	var snapshot service.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return util.NewValidationError("invalid snapshot payload", nil)
	}
	if err := h.export.Import(c.Context(), &snapshot); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"users":    len(snapshot.Users),
		"tickets":  len(snapshot.Tickets),
		"logs":     len(snapshot.Logs),
		"messages": len(snapshot.Messages),
	}})
}

// Metrics GET /admin/metrics dumps the in-memory counters.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"requests": requests,
		"errors":   errors,
	}})
}
