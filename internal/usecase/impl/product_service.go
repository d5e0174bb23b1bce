package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo     repository.ProductRepository
	defaultPageSize int
	logger          *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	defaultPageSize := 0
	if params.Config != nil && params.Config.Pagination != nil {
		defaultPageSize = params.Config.Pagination.ProductPageSize
	}

	return &productService{
		productRepo:     params.ProductRepo,
		defaultPageSize: defaultPageSize,
		logger:          params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a page of the tenant's catalog.
func (srv *productService) ListProducts(ctx context.Context, tenantID uuid.UUID, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page, limit := normalizePaging(input.Page, input.Limit, srv.defaultPageSize)

	filter := repository.ListProductsFilter{
		IsActive: input.IsActive,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	products, total, err := srv.productRepo.List(ctx, tenantID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("tenantID", tenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: usecase.NewPagination(total, page, limit),
	}, nil
}

// GetProduct returns a single product within the tenant.
func (srv *productService) GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a product to the tenant's catalog.
func (srv *productService) CreateProduct(ctx context.Context, tenantID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("tenantID", tenantID), slog.String("name", input.Name))

	product, err := entity.NewProduct(tenantID, input.Name, input.Description, input.Price, input.Stock)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product entity")
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("tenantID", tenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateProduct applies a partial update to a product. Nil input fields
// keep their stored value.
func (srv *productService) UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := product.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid product update")
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", productID))

	return product, nil
}

// DeleteProduct deactivates a product. The row is kept so existing order
// lines keep their reference.
func (srv *productService) DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	product, err := srv.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	product.IsActive = false

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to deactivate product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.log(ctx).Info("Product deactivated", slog.Any("productID", productID))

	return nil
}

// normalizePaging clamps page and limit to sane values, falling back to
// the configured default page size.
func normalizePaging(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 10
	}

	return page, limit
}
