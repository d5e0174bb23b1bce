package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. The composite unique index enforces
// at most one cart per (tenant, user) pair.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_carts_tenant_user"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_carts_tenant_user"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table, one row per cart line.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
