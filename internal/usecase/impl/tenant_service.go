package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// TenantServiceParams holds dependencies for tenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTenant provisions a new tenant and, when the admin fields are
// provided, its initial admin user in the same transaction.
func (srv *tenantService) CreateTenant(ctx context.Context, input *usecase.CreateTenantInput) (*usecase.CreateTenantOutput, error) {
	srv.log(ctx).Info("Creating tenant", slog.String("slug", input.Slug))

	withAdmin := input.AdminName != "" && input.AdminEmail != "" && input.AdminPassword != ""

	var hashedPassword string
	if withAdmin {
		var err error
		hashedPassword, err = srv.hasher.Hash(input.AdminPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash admin password", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to hash admin password")
		}
	}

	output := &usecase.CreateTenantOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		_, findErr := tenantRepo.FindBySlug(ctx, input.Slug)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrTenantSlugExists, "slug already in use")
		}
		if !errors.Is(findErr, repository.ErrTenantNotFound) {
			return errors.Wrap(findErr, "failed to check slug uniqueness")
		}

		tenant, buildErr := entity.NewTenant(input.Name, input.Slug)
		if buildErr != nil {
			return errors.Wrap(buildErr, "failed to build tenant entity")
		}

		if createErr := tenantRepo.Create(ctx, tenant); createErr != nil {
			return errors.Wrap(createErr, "failed to create tenant")
		}
		output.Tenant = tenant

		if !withAdmin {
			return nil
		}

		admin, buildAdminErr := entity.NewUser(tenant.ID, input.AdminName, input.AdminEmail, hashedPassword, entity.RoleAdmin)
		if buildAdminErr != nil {
			return errors.Wrap(buildAdminErr, "failed to build admin entity")
		}

		if createAdminErr := repoFactory.UserRepo().Create(ctx, admin); createAdminErr != nil {
			return errors.Wrap(createAdminErr, "failed to create initial admin")
		}
		output.Admin = admin

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create tenant", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute tenant creation transaction")
	}

	srv.log(ctx).Debug("Tenant created", slog.Any("tenantID", output.Tenant.ID), slog.String("slug", input.Slug))

	return output, nil
}
