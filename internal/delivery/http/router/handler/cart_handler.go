package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart returns the acting user's cart, creating one on first access.
func (h *CartHandler) GetCart(c echo.Context) error {
	tenant, claims, err := h.actor(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetCart(c.Request().Context(), tenant.ID, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Carrito obtenido", newCartResponse(output))
}

// AddItem adds a product to the acting user's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	tenant, claims, err := h.actor(c)
	if err != nil {
		return err
	}

	input := new(usecase.AddCartItemInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de carrito inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddItem(c.Request().Context(), tenant.ID, claims.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Producto agregado al carrito", newCartResponse(output))
}

// UpdateItem replaces the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	tenant, claims, err := h.actor(c)
	if err != nil {
		return err
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	input := new(usecase.UpdateCartItemInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de carrito inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateItem(c.Request().Context(), tenant.ID, claims.UserID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Carrito actualizado", newCartResponse(output))
}

// RemoveItem removes a product from the cart, succeeding even when the
// product was not in it.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	tenant, claims, err := h.actor(c)
	if err != nil {
		return err
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	output, err := h.uc.RemoveItem(c.Request().Context(), tenant.ID, claims.UserID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Producto eliminado del carrito", newCartResponse(output))
}

// ClearCart empties the acting user's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	tenant, claims, err := h.actor(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ClearCart(c.Request().Context(), tenant.ID, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Carrito vaciado", newCartResponse(output))
}

func (h *CartHandler) actor(c echo.Context) (*entity.Tenant, *service.Claims, error) {
	tenant, err := requireTenant(c)
	if err != nil {
		return nil, nil, err
	}

	claims, err := requireClaims(c)
	if err != nil {
		return nil, nil, err
	}

	return tenant, claims, nil
}
