package entity

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the state of every freshly created order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid marks a completed payment.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped marks a dispatched order.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusCancelled restocks the ordered quantities when entered.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is an immutable snapshot line: product reference, quantity and
// the unit price (and name) at purchase time, immune to later catalog edits.
type OrderItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Order is a completed checkout: the snapshot of a cart at purchase time,
// with a computed total and a lifecycle status.
type Order struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	UserID    uuid.UUID
	Items     []OrderItem
	Total     float64
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder builds a pending order from snapshot lines, computing the total
// as the sum of unit price times quantity over all lines.
func NewOrder(tenantID, userID uuid.UUID, items []OrderItem) (*Order, error) {
	if tenantID == uuid.Nil {
		return nil, errors.New("order tenant id is required")
	}
	if userID == uuid.Nil {
		return nil, errors.New("order user id is required")
	}
	if len(items) == 0 {
		return nil, errors.New("order requires at least one item")
	}

	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, errors.New("order item quantity must be at least 1")
		}
		if item.UnitPrice < 0 {
			return nil, errors.New("order item price cannot be negative")
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	return &Order{
		TenantID: tenantID,
		UserID:   userID,
		Items:    items,
		Total:    total,
		Status:   OrderStatusPending,
	}, nil
}
