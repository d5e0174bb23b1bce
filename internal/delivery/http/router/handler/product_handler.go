package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListProducts handles the paginated catalog listing.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	input := &usecase.ListProductsInput{
		IsActive: queryBool(c, "isActive"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	output, err := h.uc.ListProducts(c.Request().Context(), tenant.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Productos obtenidos", newProductListResponse(output))
}

// GetProduct handles fetching a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), tenant.ID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Producto obtenido", newProductResponse(product))
}

// CreateProduct handles adding a product to the catalog. Admin only.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateProductInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de producto inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), tenant.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Producto creado exitosamente", newProductResponse(product))
}

// UpdateProduct handles a partial product update. Admin only.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.UpdateProductInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Datos de producto inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), tenant.ID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Producto actualizado exitosamente", newProductResponse(product))
}

// DeleteProduct handles product deactivation. Admin only.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), tenant.ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Producto eliminado exitosamente", nil)
}
