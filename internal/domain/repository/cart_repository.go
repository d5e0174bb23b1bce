package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is a domain-specific error returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations for cart persistence.
// A cart is keyed uniquely by (tenant, user) and is emptied, never deleted.
type CartRepository interface {
	// FindByUser retrieves the single cart of a user within a tenant.
	FindByUser(ctx context.Context, tenantID, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new (usually empty) cart entity to the storage.
	Create(ctx context.Context, cart *entity.Cart) error

	// SaveItems replaces the cart's persisted line set with the entity's
	// current items.
	SaveItems(ctx context.Context, cart *entity.Cart) error
}
