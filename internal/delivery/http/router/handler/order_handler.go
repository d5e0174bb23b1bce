package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrder turns the acting user's cart into an order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), tenant.ID, claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Orden creada exitosamente", newOrderResponse(order))
}

// ListOrders returns a page of orders visible to the acting user.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	input := &usecase.ListOrdersInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	output, err := h.uc.ListOrders(c.Request().Context(), tenant.ID, claims.UserID, claims.Role, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Órdenes obtenidas", newOrderListResponse(output))
}

// GetOrder returns a single order visible to the acting user.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), tenant.ID, orderID, claims.UserID, claims.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Orden obtenida", newOrderResponse(order))
}

// UpdateOrderStatus changes an order's status. Admin only.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.UpdateOrderStatusInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de orden inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), tenant.ID, orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Estado de la orden actualizado", newOrderResponse(order))
}
