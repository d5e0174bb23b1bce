package impl

import (
	"context"
	"testing"

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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newTestLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (f cartServiceFixtures) passThroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func TestCartService_GetCart_CreatesLazily(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	output, err := fx.service.GetCart(ctx, tenantID, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Empty(t, output.Lines)
}

func TestCartService_AddItem_Accumulates(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 10)
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: product.ID, Quantity: 2}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	// The ProductRepo on the factory handles the stock check, the direct
	// repo resolves the output lines afterwards.
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil).Times(2)
	fx.cartRepo.EXPECT().SaveItems(ctx, cart).Return(nil)

	output, err := fx.service.AddItem(ctx, tenantID, userID, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, 5, output.Lines[0].Quantity)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 2)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(entity.NewCart(tenantID, userID), nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)

	output, err := fx.service.AddItem(ctx, tenantID, userID, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  3,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_AddItem_InactiveProductHidden(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 5)
	product.IsActive = false

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(entity.NewCart(tenantID, userID), nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)

	output, err := fx.service.AddItem(ctx, tenantID, userID, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(entity.NewCart(tenantID, userID), nil)

	output, err := fx.service.UpdateItem(ctx, tenantID, userID, productID, &usecase.UpdateCartItemInput{Quantity: 2})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_UpdateItem_MissingProductSkipsStockCheck(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: productID, Quantity: 1}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, tenantID, productID).
		Return(nil, repository.ErrProductNotFound).Times(2)
	fx.cartRepo.EXPECT().SaveItems(ctx, cart).Return(nil)

	output, err := fx.service.UpdateItem(ctx, tenantID, userID, productID, &usecase.UpdateCartItemInput{Quantity: 7})
	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, 7, output.Lines[0].Quantity)
	assert.Nil(t, output.Lines[0].Product)
}

func TestCartService_RemoveItem_AbsentProductIsNoop(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	keptProduct := uuid.New()
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: keptProduct, Quantity: 2}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().SaveItems(ctx, cart).Return(nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, tenantID, keptProduct).
		Return(activeTestProduct(tenantID, "Teclado", 10, 5), nil)

	output, err := fx.service.RemoveItem(ctx, tenantID, userID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, output.Lines, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: uuid.New(), Quantity: 2}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().SaveItems(ctx, cart).Return(nil)

	output, err := fx.service.ClearCart(ctx, tenantID, userID)
	require.NoError(t, err)
	assert.Empty(t, output.Lines)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_ClearCart_MissingCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(nil, repository.ErrCartNotFound)

	output, err := fx.service.ClearCart(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}
