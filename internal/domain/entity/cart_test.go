package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem_AccumulatesQuantity(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	productID := uuid.New()

	cart.AddItem(productID, 2)
	cart.AddItem(productID, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_AddItem_AppendsNewLine(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())

	cart.AddItem(uuid.New(), 1)
	cart.AddItem(uuid.New(), 4)

	assert.Len(t, cart.Items, 2)
}

func TestCart_SetItemQuantity(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	productID := uuid.New()
	cart.AddItem(productID, 2)

	ok := cart.SetItemQuantity(productID, 7)
	require.True(t, ok)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	ok = cart.SetItemQuantity(uuid.New(), 7)
	assert.False(t, ok)
}

func TestCart_RemoveItem_IsIdempotent(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	productID := uuid.New()
	otherID := uuid.New()
	cart.AddItem(productID, 2)
	cart.AddItem(otherID, 1)

	cart.RemoveItem(productID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, otherID, cart.Items[0].ProductID)

	cart.RemoveItem(productID)
	assert.Len(t, cart.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	cart.AddItem(uuid.New(), 2)
	cart.AddItem(uuid.New(), 3)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
}

func TestCart_FindItem(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	first := uuid.New()
	second := uuid.New()
	cart.AddItem(first, 1)
	cart.AddItem(second, 1)

	assert.Equal(t, 0, cart.FindItem(first))
	assert.Equal(t, 1, cart.FindItem(second))
	assert.Equal(t, -1, cart.FindItem(uuid.New()))
}
