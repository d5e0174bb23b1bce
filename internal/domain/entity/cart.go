package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single line in a cart: a product reference and a quantity.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int // Always >= 1. A removed line disappears instead of dropping to zero.
}

// Cart is the persistent shopping cart of one user within one tenant.
// There is at most one cart per (tenant, user) pair; it is created lazily
// and emptied rather than deleted.
type Cart struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	UserID    uuid.UUID
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart builds an empty cart for the given tenant and user.
func NewCart(tenantID, userID uuid.UUID) *Cart {
	return &Cart{
		TenantID: tenantID,
		UserID:   userID,
		Items:    []CartItem{},
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the index of the line holding productID, or -1.
func (c *Cart) FindItem(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

// AddItem accumulates quantity onto an existing line for the product,
// or appends a new line when the product is not yet in the cart.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) {
	if idx := c.FindItem(productID); idx >= 0 {
		c.Items[idx].Quantity += quantity

		return
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// SetItemQuantity sets the line for productID to an absolute quantity.
// It reports whether the line existed.
func (c *Cart) SetItemQuantity(productID uuid.UUID, quantity int) bool {
	idx := c.FindItem(productID)
	if idx < 0 {
		return false
	}

	c.Items[idx].Quantity = quantity

	return true
}

// RemoveItem filters out the line for productID. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	filtered := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.Items = filtered
}

// Clear empties the cart's line set.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}
