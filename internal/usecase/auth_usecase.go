package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
// The tenant comes from the resolved request context, never from the body.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin customer"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the authenticated user and their signed token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for registration and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a user within the tenant and issues a token.
	// Role defaults to customer when absent.
	Register(ctx context.Context, tenantID uuid.UUID, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials within the tenant and issues a token.
	Login(ctx context.Context, tenantID uuid.UUID, input *LoginInput) (*AuthOutput, error)
}
