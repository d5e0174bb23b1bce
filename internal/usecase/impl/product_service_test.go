package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	cfg := &config.Config{}
	cfg.Pagination = &config.PaginationConfig{ProductPageSize: 20, OrderPageSize: 10}

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Config:      cfg,
		Logger:      newTestLogger(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_ListProducts_PaginationMath(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	// 25 products with limit 10 on page 3 leaves 5 results and 3 pages.
	lastPage := make([]*entity.Product, 5)
	for i := range lastPage {
		lastPage[i] = activeTestProduct(tenantID, "Producto", 1, 1)
	}

	fx.productRepo.EXPECT().
		List(ctx, tenantID, mock.MatchedBy(func(filter repository.ListProductsFilter) bool {
			return filter.Offset == 20 && filter.Limit == 10
		})).
		Return(lastPage, int64(25), nil)

	output, err := fx.service.ListProducts(ctx, tenantID, &usecase.ListProductsInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, output.Products, 5)
	assert.Equal(t, int64(25), output.Pagination.Total)
	assert.Equal(t, 3, output.Pagination.Page)
	assert.Equal(t, 3, output.Pagination.Pages)
}

func TestProductService_ListProducts_DefaultsApplied(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.productRepo.EXPECT().
		List(ctx, tenantID, mock.MatchedBy(func(filter repository.ListProductsFilter) bool {
			return filter.Offset == 0 && filter.Limit == 20
		})).
		Return([]*entity.Product{}, int64(0), nil)

	output, err := fx.service.ListProducts(ctx, tenantID, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Pagination.Page)
	assert.Equal(t, 20, output.Pagination.Limit)
}

func TestProductService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:  "Teclado",
		Price: -1,
	})
	require.Error(t, err)
	assert.Nil(t, product)
}

func TestProductService_CreateProduct_AcceptsZeroPrice(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Price == 0 && p.IsActive
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, tenantID, &usecase.CreateProductInput{
		Name:  "Muestra gratis",
		Price: 0,
		Stock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), product.Price)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	existing := activeTestProduct(tenantID, "Teclado", 10, 5)
	existing.Description = "mecánico"

	fx.productRepo.EXPECT().FindByID(ctx, tenantID, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	newPrice := 12.5
	product, err := fx.service.UpdateProduct(ctx, tenantID, existing.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, product.Price, 0.0001)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Teclado", product.Name)
	assert.Equal(t, "mecánico", product.Description)
	assert.Equal(t, 5, product.Stock)
}

func TestProductService_UpdateProduct_RejectsInvalidUpdate(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	existing := activeTestProduct(tenantID, "Teclado", 10, 5)

	fx.productRepo.EXPECT().FindByID(ctx, tenantID, existing.ID).Return(existing, nil)

	badStock := -4
	product, err := fx.service.UpdateProduct(ctx, tenantID, existing.ID, &usecase.UpdateProductInput{
		Stock: &badStock,
	})
	require.Error(t, err)
	assert.Nil(t, product)
}

func TestProductService_DeleteProduct_Deactivates(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	existing := activeTestProduct(tenantID, "Teclado", 10, 5)

	fx.productRepo.EXPECT().FindByID(ctx, tenantID, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return !p.IsActive
		})).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, tenantID, existing.ID)
	require.NoError(t, err)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, tenantID, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, tenantID, productID)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
