package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_tenant_created"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Items     []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total     float64           `gorm:"type:decimal(12,2);not null;check:total >= 0"`
	Status    string            `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time         `gorm:"index:idx_orders_tenant_created,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: the immutable snapshot
// lines of an order, capturing name and unit price at purchase time.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null;check:quantity >= 1"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null;check:unit_price >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
