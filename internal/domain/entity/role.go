package entity

// Role represents the type of role a user can have within a tenant.
type Role string

const (
	// RoleAdmin can manage the tenant's catalog and orders.
	RoleAdmin Role = "admin"
	// RoleCustomer is the default role for registered shoppers.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}
