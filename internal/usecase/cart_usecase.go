package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// AddCartItemInput defines the data for adding a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// UpdateCartItemInput defines the data for replacing an item quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CartLine is a cart item enriched with its current product data. Product
// is nil when the product no longer exists.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
	Product   *entity.Product
}

// CartOutput is the resolved view of a user's cart.
type CartOutput struct {
	CartID uuid.UUID
	UserID uuid.UUID
	Lines  []CartLine
}

// CartUsecase defines the interface for cart operations. All operations
// are scoped to the acting user's cart within the tenant.
type CartUsecase interface {
	GetCart(ctx context.Context, tenantID, userID uuid.UUID) (*CartOutput, error)
	AddItem(ctx context.Context, tenantID, userID uuid.UUID, input *AddCartItemInput) (*CartOutput, error)
	UpdateItem(ctx context.Context, tenantID, userID, productID uuid.UUID, input *UpdateCartItemInput) (*CartOutput, error)
	RemoveItem(ctx context.Context, tenantID, userID, productID uuid.UUID) (*CartOutput, error)
	ClearCart(ctx context.Context, tenantID, userID uuid.UUID) (*CartOutput, error)
}
