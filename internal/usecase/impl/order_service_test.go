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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Config:    nil,
		Logger:    newTestLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

func (f orderServiceFixtures) passThroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func activeTestProduct(tenantID uuid.UUID, name string, price float64, stock int) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     name,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 5)
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: product.ID, Quantity: 3}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, tenantID, product.ID, 3).Return(nil)
	fx.cartRepo.EXPECT().
		SaveItems(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 30.0, order.Total, 0.0001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, "Teclado", order.Items[0].ProductName)
	assert.InDelta(t, 10.0, order.Items[0].UnitPrice, 0.0001)
	assert.True(t, cart.IsEmpty())
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(entity.NewCart(tenantID, userID), nil)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CreateOrder_NoCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, tenantID, userID).
		Return(nil, repository.ErrCartNotFound)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 2)
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: product.ID, Quantity: 3}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_CreateOrder_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 5)
	product.IsActive = false
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: product.ID, Quantity: 1}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
}

func TestOrderService_CreateOrder_StockDrainedDuringCheckout(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	product := activeTestProduct(tenantID, "Teclado", 10, 3)
	cart := &entity.Cart{
		ID:       uuid.New(),
		TenantID: tenantID,
		UserID:   userID,
		Items:    []entity.CartItem{{ProductID: product.ID, Quantity: 3}},
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.cartRepo.EXPECT().FindByUser(ctx, tenantID, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, tenantID, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	// A concurrent checkout drained the stock after the read above.
	fx.productRepo.EXPECT().
		DecrementStock(ctx, tenantID, product.ID, 3).
		Return(repository.ErrInsufficientStock)

	order, err := fx.service.CreateOrder(ctx, tenantID, userID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_UpdateStatus_CancelRestocks(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()
	existing := &entity.Order{
		ID:       orderID,
		TenantID: tenantID,
		UserID:   uuid.New(),
		Items:    []entity.OrderItem{{ProductID: productID, ProductName: "Teclado", Quantity: 3, UnitPrice: 10}},
		Total:    30,
		Status:   entity.OrderStatusPending,
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.repoFactory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, tenantID, orderID).Return(existing, nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, tenantID, productID, 3).Return(nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, tenantID, orderID, entity.OrderStatusCancelled).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, tenantID, orderID, &usecase.UpdateOrderStatusInput{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_UpdateStatus_CancelTwiceRestocksOnce(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:       orderID,
		TenantID: tenantID,
		UserID:   uuid.New(),
		Items:    []entity.OrderItem{{ProductID: uuid.New(), ProductName: "Teclado", Quantity: 3, UnitPrice: 10}},
		Total:    30,
		Status:   entity.OrderStatusCancelled,
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, tenantID, orderID).Return(existing, nil)
	// No IncrementStock expectation: an already-cancelled order must not restock again.
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, tenantID, orderID, entity.OrderStatusCancelled).
		Return(nil)

	_, err := fx.service.UpdateOrderStatus(ctx, tenantID, orderID, &usecase.UpdateOrderStatusInput{Status: "cancelled"})
	require.NoError(t, err)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateOrderStatusInput{Status: "teleported"})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_GetOrder_OwnershipHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	orderID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	existing := &entity.Order{
		ID:       orderID,
		TenantID: tenantID,
		UserID:   owner,
		Status:   entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, tenantID, orderID).Return(existing, nil)

	order, err := fx.service.GetOrder(ctx, tenantID, orderID, stranger, entity.RoleCustomer)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrder_AdminSeesAll(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:       orderID,
		TenantID: tenantID,
		UserID:   uuid.New(),
		Status:   entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, tenantID, orderID).Return(existing, nil)

	order, err := fx.service.GetOrder(ctx, tenantID, orderID, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, existing, order)
}

func TestOrderService_ListOrders_CustomerScoped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	actorID := uuid.New()

	fx.orderRepo.EXPECT().
		List(ctx, tenantID, mock.MatchedBy(func(filter repository.ListOrdersFilter) bool {
			return filter.UserID != nil && *filter.UserID == actorID
		})).
		Return([]*entity.Order{}, int64(0), nil)

	output, err := fx.service.ListOrders(ctx, tenantID, actorID, entity.RoleCustomer, &usecase.ListOrdersInput{})
	require.NoError(t, err)
	assert.Empty(t, output.Orders)
}

func TestOrderService_ListOrders_AdminUnscoped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.orderRepo.EXPECT().
		List(ctx, tenantID, mock.MatchedBy(func(filter repository.ListOrdersFilter) bool {
			return filter.UserID == nil
		})).
		Return(orders, int64(2), nil)

	output, err := fx.service.ListOrders(ctx, tenantID, uuid.New(), entity.RoleAdmin, &usecase.ListOrdersInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, output.Orders, 2)
	assert.Equal(t, int64(2), output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.Pages)
}
