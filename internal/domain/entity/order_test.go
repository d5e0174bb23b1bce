package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_ComputesTotal(t *testing.T) {
	order, err := NewOrder(uuid.New(), uuid.New(), []OrderItem{
		{ProductID: uuid.New(), ProductName: "Teclado", Quantity: 2, UnitPrice: 10.5},
		{ProductID: uuid.New(), ProductName: "Mouse", Quantity: 1, UnitPrice: 4},
	})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, order.Total, 0.0001)
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestNewOrder_RequiresItems(t *testing.T) {
	order, err := NewOrder(uuid.New(), uuid.New(), nil)
	require.Error(t, err)
	assert.Nil(t, order)
}

func TestNewOrder_RejectsBadLines(t *testing.T) {
	tests := []struct {
		name string
		item OrderItem
	}{
		{name: "zero quantity", item: OrderItem{ProductID: uuid.New(), Quantity: 0, UnitPrice: 1}},
		{name: "negative price", item: OrderItem{ProductID: uuid.New(), Quantity: 1, UnitPrice: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(uuid.New(), uuid.New(), []OrderItem{tt.item})
			require.Error(t, err)
			assert.Nil(t, order)
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusPaid.IsValid())
	assert.True(t, OrderStatusShipped.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
}
