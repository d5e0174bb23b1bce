package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantMiddleware resolves the acting tenant from the x-tenant-id header.
// Every API route runs behind it, so handlers can assume a valid, active
// tenant on the context.
type TenantMiddleware struct {
	tenantRepo repository.TenantRepository
}

// NewTenantMiddleware is the constructor for TenantMiddleware.
func NewTenantMiddleware(tenantRepo repository.TenantRepository) *TenantMiddleware {
	return &TenantMiddleware{tenantRepo: tenantRepo}
}

// Resolve validates the tenant header and loads the tenant.
func (m *TenantMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(deliverycontext.HeaderXTenantID)
		if header == "" {
			return domainerrors.ErrMissingTenantHeader
		}

		tenantID, err := uuid.Parse(header)
		if err != nil {
			return domainerrors.ErrInvalidTenantID
		}

		tenant, err := m.tenantRepo.FindByID(c.Request().Context(), tenantID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to resolve tenant")
		}

		if !tenant.IsActive {
			return domainerrors.ErrTenantInactive
		}

		deliverycontext.SetTenant(c, tenant)

		return next(c)
	}
}
