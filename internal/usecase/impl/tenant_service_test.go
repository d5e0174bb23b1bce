package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tenantServiceFixtures holds all test dependencies for tenant service tests.
type tenantServiceFixtures struct {
	service     usecase.TenantUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	tenantRepo  *mockRepo.MockTenantRepository
	userRepo    *mockRepo.MockUserRepository
	hasher      *mockService.MockPasswordHasher
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewTenantService(TenantServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newTestLogger(),
	})

	return tenantServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		tenantRepo:  tenantRepo,
		userRepo:    userRepo,
		hasher:      hasher,
	}
}

func (f tenantServiceFixtures) passThroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func TestTenantService_CreateTenant_WithoutAdmin(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	input := &usecase.CreateTenantInput{
		Name: "Tienda Norte",
		Slug: "tienda-norte",
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().TenantRepo().Return(fx.tenantRepo)
	fx.tenantRepo.EXPECT().
		FindBySlug(ctx, "tienda-norte").
		Return(nil, repository.ErrTenantNotFound)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(nil)

	output, err := fx.service.CreateTenant(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Tienda Norte", output.Tenant.Name)
	assert.Equal(t, "tienda-norte", output.Tenant.Slug)
	assert.True(t, output.Tenant.IsActive)
	assert.Nil(t, output.Admin)
}

func TestTenantService_CreateTenant_WithAdmin(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	input := &usecase.CreateTenantInput{
		Name:          "Tienda Norte",
		Slug:          "tienda-norte",
		AdminName:     "Ana Torres",
		AdminEmail:    "ana@tienda.com",
		AdminPassword: "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().TenantRepo().Return(fx.tenantRepo)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.tenantRepo.EXPECT().
		FindBySlug(ctx, "tienda-norte").
		Return(nil, repository.ErrTenantNotFound)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		RunAndReturn(func(_ context.Context, tenant *entity.Tenant) error {
			tenant.ID = uuid.New()

			return nil
		})
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.Email == "ana@tienda.com" && u.PasswordHash == "hashed"
		})).
		Return(nil)

	output, err := fx.service.CreateTenant(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.Admin)
	assert.Equal(t, output.Tenant.ID, output.Admin.TenantID)
	assert.Equal(t, entity.RoleAdmin, output.Admin.Role)
}

func TestTenantService_CreateTenant_SkipsAdminWithoutName(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	input := &usecase.CreateTenantInput{
		Name:          "Tienda Norte",
		Slug:          "tienda-norte",
		AdminEmail:    "ana@tienda.com",
		AdminPassword: "secret123",
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().TenantRepo().Return(fx.tenantRepo)
	fx.tenantRepo.EXPECT().
		FindBySlug(ctx, "tienda-norte").
		Return(nil, repository.ErrTenantNotFound)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(nil)

	output, err := fx.service.CreateTenant(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "tienda-norte", output.Tenant.Slug)
	assert.Nil(t, output.Admin)
}

func TestTenantService_CreateTenant_SlugExists(t *testing.T) {
	fx := createTestTenantService(t)

	ctx := context.Background()
	input := &usecase.CreateTenantInput{
		Name: "Tienda Norte",
		Slug: "tienda-norte",
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().TenantRepo().Return(fx.tenantRepo)
	fx.tenantRepo.EXPECT().
		FindBySlug(ctx, "tienda-norte").
		Return(&entity.Tenant{Slug: "tienda-norte"}, nil)

	output, err := fx.service.CreateTenant(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTenantSlugExists))
}
