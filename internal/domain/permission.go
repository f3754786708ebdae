package domain

// Permission is a named capability flag gating a specific action.
type Permission string

const (
	PermViewDashboard        Permission = "view_dashboard"
	PermViewStaffDirectory   Permission = "view_staff_directory"
	PermViewEmployeeProfiles Permission = "view_employee_profiles"
	PermCreateTicket         Permission = "create_ticket"
	PermViewAllTickets       Permission = "view_all_tickets"
	PermEditTicket           Permission = "edit_ticket"
	PermAssignTicket         Permission = "assign_ticket"
	PermDeleteTicket         Permission = "delete_ticket"
	PermManageUsers          Permission = "manage_users"
	PermViewReports          Permission = "view_reports"
	PermManageUIBranding     Permission = "manage_ui_branding"
	PermManageSettings       Permission = "manage_settings"
)

// PermissionCatalog returns the full closed set of permission identifiers.
// ADMIN always holds exactly this set.
func PermissionCatalog() []Permission {
	return []Permission{
		PermViewDashboard,
		PermViewStaffDirectory,
		PermViewEmployeeProfiles,
		PermCreateTicket,
		PermViewAllTickets,
		PermEditTicket,
		PermAssignTicket,
		PermDeleteTicket,
		PermManageUsers,
		PermViewReports,
		PermManageUIBranding,
		PermManageSettings,
	}
}

// IsKnown reports whether the permission is part of the catalog.
func (p Permission) IsKnown() bool {
	for _, known := range PermissionCatalog() {
		if p == known {
			return true
		}
	}
	return false
}

// DefaultPermissions returns the seed permission sets per role. EMPLOYEE gets
// the minimal self-service subset, TECHNICIAN broad ticket-management rights,
// ADMIN the complete catalog.
func DefaultPermissions() map[Role][]Permission {
	return map[Role][]Permission{
		RoleEmployee: {
			PermViewDashboard,
			PermCreateTicket,
		},
		RoleTechnician: {
			PermViewDashboard,
			PermViewStaffDirectory,
			PermCreateTicket,
			PermViewAllTickets,
			PermEditTicket,
			PermAssignTicket,
			PermDeleteTicket,
			PermViewReports,
		},
		RoleAdmin: PermissionCatalog(),
	}
}
