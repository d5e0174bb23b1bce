package service

import (
	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// Claims is the decoded identity a verified token carries. All four fields
// are required; a token missing any of them is invalid.
type Claims struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     entity.Role
	Email    string
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed token embedding the user's identity,
	// tenant, role and email.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies a token string and returns its decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
