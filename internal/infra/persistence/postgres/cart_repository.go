package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUser retrieves the single cart of a user within a tenant, preloading its lines.
func (repo *cartRepository) FindByUser(ctx context.Context, tenantID, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new cart entity, including any initial lines.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		// The unique index on (tenant_id, user_id) enforces one cart per user.
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "cart already exists for this user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required cart information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	// Update the entity with generated values
	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// SaveItems replaces the cart's persisted line set with the entity's current
// items: delete then batch insert. Callers run this inside a transaction when
// the surrounding operation must be atomic.
func (repo *cartRepository) SaveItems(ctx context.Context, cart *entity.Cart) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cart.ID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	if len(cart.Items) > 0 {
		itemModels := make([]*model.CartItemModel, 0, len(cart.Items))
		for _, item := range cart.Items {
			itemModels = append(itemModels, &model.CartItemModel{
				CartID:    cart.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("cart item quantity must be at least 1")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}
	}

	// Bump the cart's updated_at so the row reflects the mutation.
	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Update("updated_at", gorm.Expr("now()")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		TenantID:  data.TenantID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel for persistence.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	items := make([]*model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.CartItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &model.CartModel{
		ID:       data.ID,
		TenantID: data.TenantID,
		UserID:   data.UserID,
		Items:    items,
	}
}
