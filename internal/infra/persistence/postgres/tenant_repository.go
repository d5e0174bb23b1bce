// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// tenantRepository implements the repository.TenantRepository interface using GORM.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// FindByID retrieves a single tenant by its unique ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by id")
	}

	return toTenantDomain(&tenantM), nil
}

// FindBySlug retrieves a single tenant by its unique slug.
func (repo *tenantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by slug")
	}

	return toTenantDomain(&tenantM), nil
}

// Create persists a new tenant entity to the database.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTenantSlugExists.WrapMessage("slug already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel for persistence.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
		ID:       data.ID,
		Name:     data.Name,
		Slug:     data.Slug,
		IsActive: data.IsActive,
	}
}
