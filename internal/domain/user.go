package domain

import "time"

// Role determines a user's default permission baseline.
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleTechnician Role = "TECHNICIAN"
	RoleAdmin      Role = "ADMIN"
)

// Roles lists the closed set of roles, lowest privilege first.
func Roles() []Role {
	return []Role{RoleEmployee, RoleTechnician, RoleAdmin}
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may work tickets beyond its own.
func (r Role) IsStaff() bool {
	return r == RoleTechnician || r == RoleAdmin
}

// User is the domain model for everyone who signs in: employees who submit
// tickets, technicians who work them, and admins.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
