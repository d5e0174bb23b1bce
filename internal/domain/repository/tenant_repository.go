// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is a domain-specific error returned when a tenant is not found.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository defines the standard operations for tenant persistence.
// Tenants are the only entities not scoped by a tenant identifier.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindBySlug retrieves a single tenant by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error)

	// Create persists a new tenant entity to the storage.
	Create(ctx context.Context, tenant *entity.Tenant) error
}
