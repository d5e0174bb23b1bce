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
	"golang.org/x/crypto/bcrypt"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	hasher      *mockService.MockPasswordHasher
	tokenSvc    *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newTestLogger(),
	})

	return authServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		userRepo:    userRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}

// passThroughTx makes the transaction manager run the given function
// against the fixture's repository factory.
func (f authServiceFixtures) passThroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func TestAuthService_Register_NewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := &usecase.RegisterInput{
		Name:     "Ana Torres",
		Email:    "Ana@Example.com",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "Ana@Example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("*entity.User")).
		Return("token-123", nil)

	output, err := fx.service.Register(ctx, tenantID, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "token-123", output.Token)
	assert.Equal(t, "ana@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, tenantID, output.User.TenantID)
	assert.True(t, output.User.IsActive)
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := &usecase.RegisterInput{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "ana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	output, err := fx.service.Register(ctx, tenantID, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     "superuser",
	}

	output, err := fx.service.Register(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_AdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := &usecase.RegisterInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret123",
		Role:     "admin",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "root@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("*entity.User")).
		Return("token-admin", nil)

	output, err := fx.service.Register(ctx, tenantID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func registeredTestUser(tenantID uuid.UUID, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	return &entity.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Name:         "Ana Torres",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	user := registeredTestUser(tenantID, "secret123")

	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "ana@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", user.PasswordHash).Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(user).Return("token-123", nil)

	output, err := fx.service.Login(ctx, tenantID, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, tenantID, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	user := registeredTestUser(tenantID, "secret123")

	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "ana@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().Check("not-the-password", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, tenantID, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "not-the-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	user := registeredTestUser(tenantID, "secret123")
	user.IsActive = false

	// No hasher expectation: the account state is checked before the
	// password, so even a wrong password reports the inactive account.
	fx.userRepo.EXPECT().
		FindByEmail(ctx, tenantID, "ana@example.com").
		Return(user, nil)

	output, err := fx.service.Login(ctx, tenantID, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}
