package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// UpdateOrderStatusInput defines the data for an order status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// ListOrdersInput defines the paging parameters for listing orders.
type ListOrdersInput struct {
	Page  int
	Limit int
}

// OrderListOutput bundles a page of orders with its pagination data.
type OrderListOutput struct {
	Orders     []*entity.Order
	Pagination *Pagination
}

// OrderUsecase defines the interface for order operations. Actor identity
// and role come from the authenticated request; admins see every order in
// the tenant while customers only see their own.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, tenantID, userID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, tenantID, actorID uuid.UUID, actorRole entity.Role, input *ListOrdersInput) (*OrderListOutput, error)
	GetOrder(ctx context.Context, tenantID, orderID, actorID uuid.UUID, actorRole entity.Role) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, tenantID, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
}
