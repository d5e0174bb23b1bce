package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		Email:    "ana@acme.test",
		Role:     entity.RoleCustomer,
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	user := newTestUser()
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.TenantID, claims.TenantID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
	assert.Equal(t, user.Email, claims.Email)
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// Built directly so the token carries an exp claim already in the past.
	issuer := &jwtService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := issuer.GenerateToken(newTestUser())
	require.NoError(t, err)

	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestConfig(time.Hour)
	otherCfg.SecretKey.Access = "another-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(newTestUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
