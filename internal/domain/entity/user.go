package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// User is an account scoped to a single tenant. The same email may exist
// under different tenants; uniqueness holds for the (tenant, email) pair only.
type User struct {
	ID           uuid.UUID
	TenantID     uuid.UUID // The owning tenant. A user never acts outside this tenant.
	Name         string
	Email        string
	PasswordHash string // bcrypt hash. Never serialized in any response.
	Role         Role
	IsActive     bool // An inactive user may not log in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a user after validating required fields and role membership.
// The password hash must already be computed by the caller; hashing is an
// explicit service call, never a persistence hook.
func NewUser(tenantID uuid.UUID, name, email, passwordHash string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if tenantID == uuid.Nil {
		return nil, errors.New("user tenant id is required")
	}
	if name == "" {
		return nil, errors.New("user name is required")
	}
	if email == "" {
		return nil, errors.New("user email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("user password hash is required")
	}
	if role == "" {
		role = RoleCustomer
	}
	if !role.IsValid() {
		return nil, errors.Errorf("invalid user role: %s", role)
	}

	return &User{
		TenantID:     tenantID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}, nil
}
