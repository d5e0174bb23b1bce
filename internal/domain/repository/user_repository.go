package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Every lookup is scoped by tenant: a user from one tenant is invisible to
// queries made under another.
type UserRepository interface {
	// FindByID retrieves a single user by ID within a tenant.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email within a tenant.
	// The same email may exist under other tenants.
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
