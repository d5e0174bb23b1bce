package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, tenantID, userID uuid.UUID) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, tenantID, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find cart")
		}

		cart = entity.NewCart(tenantID, userID)
		if createErr := srv.cartRepo.Create(ctx, cart); createErr != nil {
			srv.log(ctx).Error("Failed to create cart", slog.Any("userID", userID), slog.Any("error", createErr))

			return nil, errors.Wrap(createErr, "failed to create cart")
		}
	}

	return srv.buildCartOutput(ctx, tenantID, cart)
}

// AddItem adds the requested quantity of a product to the user's cart,
// accumulating when the product is already present. The requested delta is
// validated against the current stock.
func (srv *cartService) AddItem(ctx context.Context, tenantID, userID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("userID", userID), slog.Any("productID", input.ProductID), slog.Int("quantity", input.Quantity))

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, getErr := srv.getOrCreateCart(ctx, cartRepo, tenantID, userID)
		if getErr != nil {
			return getErr
		}

		product, findErr := repoFactory.ProductRepo().FindByID(ctx, tenantID, input.ProductID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found for cart add")
			}

			return errors.Wrap(findErr, "failed to find product for cart add")
		}
		// Inactive products are hidden from the cart the same way a
		// deleted one would be.
		if !product.IsActive {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product inactive for cart add")
		}
		if input.Quantity > product.Stock {
			return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(product.Name), "requested quantity exceeds stock")
		}

		current.AddItem(input.ProductID, input.Quantity)

		if saveErr := cartRepo.SaveItems(ctx, current); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save cart items")
		}

		cart = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart add transaction")
	}

	return srv.buildCartOutput(ctx, tenantID, cart)
}

// UpdateItem replaces the quantity of an item already in the cart.
func (srv *cartService) UpdateItem(ctx context.Context, tenantID, userID, productID uuid.UUID, input *usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, findErr := cartRepo.FindByUser(ctx, tenantID, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found for item update")
			}

			return errors.Wrap(findErr, "failed to find cart for item update")
		}

		if current.FindItem(productID) < 0 {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "item not in cart")
		}

		// The stock check is skipped when the product row is gone, the
		// order flow revalidates before committing anyway.
		product, prodErr := repoFactory.ProductRepo().FindByID(ctx, tenantID, productID)
		if prodErr != nil && !errors.Is(prodErr, repository.ErrProductNotFound) {
			return errors.Wrap(prodErr, "failed to find product for item update")
		}
		if product != nil && input.Quantity > product.Stock {
			return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(product.Name), "requested quantity exceeds stock")
		}

		current.SetItemQuantity(productID, input.Quantity)

		if saveErr := cartRepo.SaveItems(ctx, current); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save cart items")
		}

		cart = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart update transaction")
	}

	return srv.buildCartOutput(ctx, tenantID, cart)
}

// RemoveItem removes a product from the cart. Removing a product that is
// not present leaves the cart unchanged.
func (srv *cartService) RemoveItem(ctx context.Context, tenantID, userID, productID uuid.UUID) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, findErr := cartRepo.FindByUser(ctx, tenantID, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found for item removal")
			}

			return errors.Wrap(findErr, "failed to find cart for item removal")
		}

		current.RemoveItem(productID)

		if saveErr := cartRepo.SaveItems(ctx, current); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save cart items")
		}

		cart = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart removal transaction")
	}

	return srv.buildCartOutput(ctx, tenantID, cart)
}

// ClearCart empties the user's cart. A user that never had a cart gets
// a not-found error rather than a fresh empty cart.
func (srv *cartService) ClearCart(ctx context.Context, tenantID, userID uuid.UUID) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		current, findErr := cartRepo.FindByUser(ctx, tenantID, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found for clear")
			}

			return errors.Wrap(findErr, "failed to find cart for clear")
		}

		current.Clear()

		if saveErr := cartRepo.SaveItems(ctx, current); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save cart items")
		}

		cart = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to clear cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart clear transaction")
	}

	return srv.buildCartOutput(ctx, tenantID, cart)
}

func (srv *cartService) getOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, tenantID, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, tenantID, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(tenantID, userID)
	if createErr := cartRepo.Create(ctx, cart); createErr != nil {
		return nil, errors.Wrap(createErr, "failed to create cart")
	}

	return cart, nil
}

// buildCartOutput resolves the current product data for each line. Lines
// whose product no longer exists keep a nil Product.
func (srv *cartService) buildCartOutput(ctx context.Context, tenantID uuid.UUID, cart *entity.Cart) (*usecase.CartOutput, error) {
	output := &usecase.CartOutput{
		CartID: cart.ID,
		UserID: cart.UserID,
		Lines:  make([]usecase.CartLine, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		line := usecase.CartLine{ProductID: item.ProductID, Quantity: item.Quantity}

		product, err := srv.productRepo.FindByID(ctx, tenantID, item.ProductID)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(err, "failed to resolve cart product")
		}
		line.Product = product

		output.Lines = append(output.Lines, line)
	}

	return output, nil
}
