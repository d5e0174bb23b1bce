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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	defaultPageSize int
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	defaultPageSize := 0
	if params.Config != nil && params.Config.Pagination != nil {
		defaultPageSize = params.Config.Pagination.OrderPageSize
	}

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		defaultPageSize: defaultPageSize,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder turns the user's cart into an order. Validation, price and
// name snapshotting, stock decrement and cart clearing all run in one
// transaction so a failed line leaves no partial state behind.
func (srv *orderService) CreateOrder(ctx context.Context, tenantID, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("tenantID", tenantID), slog.Any("userID", userID))

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cart, findErr := cartRepo.FindByUser(ctx, tenantID, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrEmptyCart, "no cart for user")
			}

			return errors.Wrap(findErr, "failed to find cart for order")
		}
		if cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cart has no items")
		}

		orderItems := make([]entity.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			product, prodErr := productRepo.FindByID(ctx, tenantID, item.ProductID)
			if prodErr != nil {
				if errors.Is(prodErr, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductUnavailable.WithDetails(item.ProductID.String()), "cart references missing product")
				}

				return errors.Wrap(prodErr, "failed to find product for order")
			}
			if !product.IsActive {
				return errors.Wrap(domainerrors.ErrProductUnavailable.WithDetails(product.Name), "cart references inactive product")
			}
			if item.Quantity > product.Stock {
				return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(product.Name), "cart quantity exceeds stock")
			}

			orderItems = append(orderItems, entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
		}

		newOrder, buildErr := entity.NewOrder(tenantID, userID, orderItems)
		if buildErr != nil {
			return errors.Wrap(buildErr, "failed to build order entity")
		}

		if createErr := repoFactory.OrderRepo().Create(ctx, newOrder); createErr != nil {
			return errors.Wrap(createErr, "failed to create order")
		}

		// Conditional decrement guards against a concurrent checkout
		// draining the stock between the check above and this write.
		for _, item := range newOrder.Items {
			if decErr := productRepo.DecrementStock(ctx, tenantID, item.ProductID, item.Quantity); decErr != nil {
				if errors.Is(decErr, repository.ErrInsufficientStock) {
					return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(item.ProductName), "stock drained during checkout")
				}

				return errors.Wrap(decErr, "failed to decrement stock")
			}
		}

		cart.Clear()
		if saveErr := cartRepo.SaveItems(ctx, cart); saveErr != nil {
			return errors.Wrap(saveErr, "failed to clear cart after order")
		}

		order = newOrder

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID), slog.Float64("total", order.Total))

	return order, nil
}

// ListOrders returns a page of orders. Admins see every order in the
// tenant, customers only their own.
func (srv *orderService) ListOrders(ctx context.Context, tenantID, actorID uuid.UUID, actorRole entity.Role, input *usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	page, limit := normalizePaging(input.Page, input.Limit, srv.defaultPageSize)

	filter := repository.ListOrdersFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if actorRole != entity.RoleAdmin {
		filter.UserID = &actorID
	}

	orders, total, err := srv.orderRepo.List(ctx, tenantID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("tenantID", tenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Orders:     orders,
		Pagination: usecase.NewPagination(total, page, limit),
	}, nil
}

// GetOrder returns a single order. Customers asking for someone else's
// order get a not found answer rather than a forbidden one, the order's
// existence is not theirs to learn.
func (srv *orderService) GetOrder(ctx context.Context, tenantID, orderID, actorID uuid.UUID, actorRole entity.Role) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if actorRole != entity.RoleAdmin && order.UserID != actorID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	return order, nil
}

// UpdateOrderStatus changes an order's status. Moving into cancelled
// restocks the order's lines exactly once.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, tenantID, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	newStatus := entity.OrderStatus(input.Status)
	if !newStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus.WithDetails(input.Status), "unknown order status")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		current, findErr := orderRepo.FindByID(ctx, tenantID, orderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for status update")
			}

			return errors.Wrap(findErr, "failed to find order for status update")
		}

		if newStatus == entity.OrderStatusCancelled && current.Status != entity.OrderStatusCancelled {
			productRepo := repoFactory.ProductRepo()
			for _, item := range current.Items {
				if incErr := productRepo.IncrementStock(ctx, tenantID, item.ProductID, item.Quantity); incErr != nil {
					return errors.Wrap(incErr, "failed to restock cancelled order line")
				}
			}
		}

		if updateErr := orderRepo.UpdateStatus(ctx, tenantID, orderID, newStatus); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update order status")
		}

		current.Status = newStatus
		order = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(newStatus)))

	return order, nil
}
