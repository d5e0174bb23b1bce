// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// Tenant represents an isolated organization using the platform.
// Every other entity in the system belongs to exactly one tenant, and data
// must never cross tenant boundaries.
type Tenant struct {
	ID        uuid.UUID // The unique identifier carried on every request via the X-Tenant-Id header.
	Name      string    // Display name of the organization.
	Slug      string    // URL-friendly identifier, unique across all tenants.
	IsActive  bool      // An inactive tenant blocks all of its traffic.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTenant builds a tenant after validating its required fields.
// Tenants start active; deactivation is an administrative operation.
func NewTenant(name, slug string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	slug = strings.ToLower(strings.TrimSpace(slug))

	if name == "" {
		return nil, errors.New("tenant name is required")
	}
	if slug == "" {
		return nil, errors.New("tenant slug is required")
	}

	return &Tenant{
		Name:     name,
		Slug:     slug,
		IsActive: true,
	}, nil
}
