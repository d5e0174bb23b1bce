package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for tenant provisioning handlers.
type TenantHandler struct {
	uc usecase.TenantUsecase
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

type createTenantResponse struct {
	Tenant *tenantResponse `json:"tenant"`
	Admin  *userResponse   `json:"admin,omitempty"`
}

// CreateTenant handles tenant creation. This is the only endpoint that
// runs outside the tenant middleware.
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	input := new(usecase.CreateTenantInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de tenant inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateTenant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := &createTenantResponse{Tenant: newTenantResponse(output.Tenant)}
	if output.Admin != nil {
		resp.Admin = newUserResponse(output.Admin)
	}

	return response.Success(c, http.StatusCreated, "Tenant creado exitosamente", resp)
}
