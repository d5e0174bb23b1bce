package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// Response DTOs keep wire shapes independent from the domain entities, and
// make sure fields like the password hash never reach a client.

type tenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenantId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User  *userResponse `json:"user"`
	Token string        `json:"token"`
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type productListResponse struct {
	Products   []*productResponse  `json:"products"`
	Pagination *usecase.Pagination `json:"pagination"`
}

type cartItemResponse struct {
	ProductID uuid.UUID        `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *productResponse `json:"product,omitempty"`
}

type cartResponse struct {
	ID     uuid.UUID          `json:"id"`
	UserID uuid.UUID          `json:"userId"`
	Items  []cartItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
}

type orderResponse struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Items     []orderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

type orderListResponse struct {
	Orders     []*orderResponse    `json:"orders"`
	Pagination *usecase.Pagination `json:"pagination"`
}

func newTenantResponse(tenant *entity.Tenant) *tenantResponse {
	return &tenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
	}
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func newProductResponse(product *entity.Product) *productResponse {
	return &productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductListResponse(output *usecase.ProductListOutput) *productListResponse {
	products := make([]*productResponse, 0, len(output.Products))
	for _, product := range output.Products {
		products = append(products, newProductResponse(product))
	}

	return &productListResponse{Products: products, Pagination: output.Pagination}
}

func newCartResponse(output *usecase.CartOutput) *cartResponse {
	items := make([]cartItemResponse, 0, len(output.Lines))
	for _, line := range output.Lines {
		item := cartItemResponse{ProductID: line.ProductID, Quantity: line.Quantity}
		if line.Product != nil {
			item.Product = newProductResponse(line.Product)
		}
		items = append(items, item)
	}

	return &cartResponse{ID: output.CartID, UserID: output.UserID, Items: items}
}

func newOrderResponse(order *entity.Order) *orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &orderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func newOrderListResponse(output *usecase.OrderListOutput) *orderListResponse {
	orders := make([]*orderResponse, 0, len(output.Orders))
	for _, order := range output.Orders {
		orders = append(orders, newOrderResponse(order))
	}

	return &orderListResponse{Orders: orders, Pagination: output.Pagination}
}
