package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ListOrdersFilter narrows and paginates a tenant's order listing.
type ListOrdersFilter struct {
	UserID *uuid.UUID // Non-nil restricts the listing to one user's orders.
	Offset int
	Limit  int
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by ID within a tenant.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Order, error)

	// List retrieves a page of a tenant's orders sorted by creation time
	// descending, together with the total count matching the filter.
	List(ctx context.Context, tenantID uuid.UUID, filter ListOrdersFilter) ([]*entity.Order, int64, error)

	// Create persists a new order entity, including its snapshot lines.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus persists a new lifecycle status for an order.
	UpdateStatus(ctx context.Context, tenantID, orderID uuid.UUID, status entity.OrderStatus) error
}
