package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateTenantInput defines the data required to create a tenant.
// The admin fields are optional; when all three are present an initial
// admin user is created alongside the tenant.
type CreateTenantInput struct {
	Name          string `json:"name" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	AdminName     string `json:"adminName" validate:"omitempty"`
	AdminEmail    string `json:"adminEmail" validate:"omitempty,email"`
	AdminPassword string `json:"adminPassword" validate:"omitempty"`
}

// CreateTenantOutput returns the created tenant and, when requested, its
// initial admin user.
type CreateTenantOutput struct {
	Tenant *entity.Tenant
	Admin  *entity.User
}

// TenantUsecase defines the interface for tenant provisioning.
type TenantUsecase interface {
	CreateTenant(ctx context.Context, input *CreateTenantInput) (*CreateTenantOutput, error)
}
