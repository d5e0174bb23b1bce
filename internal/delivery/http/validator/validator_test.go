package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AcceptsFreeProduct(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateProductInput{
		Name:  "Muestra gratis",
		Price: 0,
		Stock: 5,
	})
	require.NoError(t, err)
}

func TestValidator_RejectsNegativePrice(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateProductInput{
		Name:  "Camiseta",
		Price: -1,
		Stock: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestValidator_RequiresName(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateProductInput{Price: 10, Stock: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
