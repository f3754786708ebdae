package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Triage         *handlers.TriageHandler
	Messages       *handlers.MessagesHandler
	Reports        *handlers.ReportsHandler
	Permissions    *handlers.PermissionsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
	RBAC           *rbac.Service
}

// RegisterRoutes wires HTTP routes. Permission checks at the router only gate
// entry; the services re-check every guard before mutating anything.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	authed := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authed.Post("/password/change", cfg.Users.ChangePassword)
	authed.Get("/me", cfg.Users.Me)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Post("/bulk/take", cfg.Triage.BulkTake)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Post("/:id/comments", cfg.Tickets.Comment)
	tickets.Post("/:id/verify", cfg.Tickets.Verify)
	tickets.Post("/:id/take", cfg.Triage.Take)
	tickets.Post("/:id/resolve", cfg.Triage.Resolve)
	tickets.Post("/:id/hold", cfg.Triage.Hold)
	tickets.Post("/:id/reject", cfg.Triage.Reject)
	tickets.Post("/:id/unlock", auth.RequireRole(domain.RoleAdmin), cfg.Triage.Unlock)
	tickets.Post("/:id/lock", auth.RequireRole(domain.RoleAdmin), cfg.Triage.Lock)
	tickets.Patch("/:id/triage", cfg.Triage.UpdateTriage)
	tickets.Delete("/:id", cfg.Triage.Delete)

	messages := app.Group("/messages", cfg.AuthMiddleware.Handle)
	messages.Get("", cfg.Messages.List)
	messages.Post("/:id/read", cfg.Messages.MarkRead)
	messages.Delete("/:id", cfg.Messages.Delete)

	reports := app.Group("/reports", cfg.AuthMiddleware.Handle,
		auth.RequirePermission(cfg.RBAC, domain.PermViewReports))
	reports.Get("/summary", cfg.Reports.Summary)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)

	permissions := admin.Group("/permissions",
		auth.RequirePermission(cfg.RBAC, domain.PermManageSettings))
	permissions.Get("/:role", cfg.Permissions.Get)
	permissions.Put("/:role", cfg.Permissions.Update)
	permissions.Post("/:role/toggle", cfg.Permissions.Toggle)

	users := admin.Group("/users",
		auth.RequirePermission(cfg.RBAC, domain.PermManageUsers))
	users.Get("", cfg.Users.ListUsers)
	users.Post("", cfg.Users.CreateUser)

	settings := admin.Group("",
		auth.RequirePermission(cfg.RBAC, domain.PermManageSettings))
	settings.Get("/export", cfg.Admin.Export)
	settings.Post("/import", cfg.Admin.Import)
	settings.Get("/metrics", cfg.Admin.Metrics)
}
