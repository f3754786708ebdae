package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RegisterRequest payload for self-service signup.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department"`
}

// CreateUserRequest payload for manage_users holders.
type CreateUserRequest struct {
	RegisterRequest
	Role domain.Role `json:"role" validate:"required,oneof=EMPLOYEE TECHNICIAN ADMIN"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserResponse hides the password hash.
type UserResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	Department string      `json:"department"`
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"created_at"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdatePermissionsRequest replaces a role's permission set.
type UpdatePermissionsRequest struct {
	Permissions []domain.Permission `json:"permissions" validate:"required"`
}

// TogglePermissionRequest flips one permission.
type TogglePermissionRequest struct {
	Permission domain.Permission `json:"permission" validate:"required"`
}

// RolePermissionsResponse is one role's current set.
type RolePermissionsResponse struct {
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// MessageResponse is one inbox entry.
type MessageResponse struct {
	ID        string    `json:"id"`
	TicketID  *string   `json:"ticket_id,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
