package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// Product is a tenant-scoped catalog entry. Products are soft-deleted:
// deactivated rather than removed, so existing orders keep valid references.
type Product struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Description string
	Price       float64 // Current unit price. Orders snapshot it at purchase time.
	Stock       int     // Units available. Never negative.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct builds a product after validating the catalog invariants.
func NewProduct(tenantID uuid.UUID, name, description string, price float64, stock int) (*Product, error) {
	name = strings.TrimSpace(name)

	if tenantID == uuid.Nil {
		return nil, errors.New("product tenant id is required")
	}
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if price < 0 {
		return nil, errors.New("product price cannot be negative")
	}
	if stock < 0 {
		return nil, errors.New("product stock cannot be negative")
	}

	return &Product{
		TenantID:    tenantID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Stock:       stock,
		IsActive:    true,
	}, nil
}

// Validate re-checks the catalog invariants after a partial update.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	if p.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}

	return nil
}
