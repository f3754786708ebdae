package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuthService handles registration, login and password changes.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService constructs the service from config.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// RegisterInput describes a signup payload. Self-registration always yields
// an EMPLOYEE; other roles are granted through CreateUser by a manager.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
}

// Register creates an employee account.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return s.createUser(ctx, input.Name, input.Email, input.Password, input.Department, domain.RoleEmployee)
}

// CreateUser creates an account with an explicit role, for manage_users holders.
func (s *AuthService) CreateUser(ctx context.Context, input RegisterInput, role domain.Role) (*domain.User, error) {
	if !role.IsValid() {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": role})
	}
	return s.createUser(ctx, input.Name, input.Email, input.Password, input.Department, role)
}

func (s *AuthService) createUser(ctx context.Context, name, email, password, department string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, util.NewValidationError("name and email required", nil)
	}
	if len(password) < 8 {
		return nil, util.NewValidationError("password must be at least 8 characters", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, util.NewStoreError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Department:   department,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, util.NewStoreError(err)
	}
	return user, nil
}

// LoginResult carries the issued token.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewUnauthorized("invalid credentials")
		}
		return nil, util.NewStoreError(err)
	}
	if !user.Active {
		return nil, util.NewUnauthorized("account suspended")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, util.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// ChangePassword rotates the caller's password after verifying the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return util.NewValidationError("password must be at least 8 characters", nil)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return util.NewStoreError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return util.NewUnauthorized("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return util.NewInternalError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return util.NewStoreError(err)
	}
	return nil
}
