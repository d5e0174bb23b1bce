package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches a tenant-scoped lookup.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned by DecrementStock when the conditional
	// update matched no row because the remaining stock is below the requested
	// quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ListProductsFilter narrows and paginates a tenant's product listing.
type ListProductsFilter struct {
	IsActive *bool // nil lists both active and inactive products.
	Offset   int
	Limit    int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by ID within a tenant.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error)

	// List retrieves a page of a tenant's products sorted by creation time
	// descending, together with the total count matching the filter.
	List(ctx context.Context, tenantID uuid.UUID, filter ListProductsFilter) ([]*entity.Product, int64, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// DecrementStock atomically subtracts quantity from a product's stock,
	// but only when the remaining stock covers it (stock >= quantity).
	// Returns ErrInsufficientStock when the guard fails. This is the
	// serialization point that prevents overselling under concurrent checkouts.
	DecrementStock(ctx context.Context, tenantID, productID uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity back onto a product's stock,
	// used when an order is cancelled.
	IncrementStock(ctx context.Context, tenantID, productID uuid.UUID, quantity int) error
}
