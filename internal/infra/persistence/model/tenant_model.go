// Package model holds the GORM-specific structs that mirror the database
// tables. They are kept separate from the domain entities; mapper functions
// in the postgres package convert between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);not null;unique"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
