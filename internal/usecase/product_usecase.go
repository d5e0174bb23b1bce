package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductInput carries a partial update. Nil fields keep their
// current value.
type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive"`
}

// ListProductsInput defines the filters for listing products.
type ListProductsInput struct {
	IsActive *bool
	Page     int
	Limit    int
}

// ProductListOutput bundles a page of products with its pagination data.
type ProductListOutput struct {
	Products   []*entity.Product
	Pagination *Pagination
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, tenantID uuid.UUID, input *ListProductsInput) (*ProductListOutput, error)
	GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, tenantID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error
}
