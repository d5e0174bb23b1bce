package handler

import (
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireTenant returns the tenant resolved by the tenant middleware.
func requireTenant(c echo.Context) (*entity.Tenant, error) {
	tenant := deliverycontext.GetTenant(c)
	if tenant == nil {
		return nil, domainerrors.ErrMissingTenantHeader
	}

	return tenant, nil
}

// requireClaims returns the claims set by the auth middleware.
func requireClaims(c echo.Context) (*service.Claims, error) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return nil, domainerrors.ErrMissingToken
	}

	return claims, nil
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("identificador inválido: " + name)
	}

	return id, nil
}

// queryInt reads an integer query parameter, returning zero when absent
// or malformed so the usecase layer applies its defaults.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

// queryBool reads an optional boolean query parameter.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}
