package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		stock   int
		want    int
	}{
		{"increment within stock", 2, 1, 10, 3},
		{"decrement within range", 2, -1, 10, 1},
		{"never below one", 1, -1, 10, 1},
		{"never above stock", 10, 1, 10, 10},
		{"jump above stock clamps", 3, 100, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.current, tt.delta, tt.stock))
		})
	}
}

func TestNewSelectionSkipsOutOfStock(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Price: 100, Quantity: 1, Stock: 20},
		{ProductID: 2, Price: 50, Quantity: 2, Stock: 0},
	}

	selection := NewSelection(items)

	assert.True(t, selection[1])
	assert.False(t, selection[2])
	assert.Equal(t, 100.0, selection.Total(items))
}

func TestSelectionToggleIgnoresOutOfStock(t *testing.T) {
	outOfStock := CartItem{ProductID: 2, Stock: 0}
	selection := Selection{}

	selection.Toggle(outOfStock)
	assert.False(t, selection[2])

	inStock := CartItem{ProductID: 1, Stock: 3}
	selection.Toggle(inStock)
	assert.True(t, selection[1])
	selection.Toggle(inStock)
	assert.False(t, selection[1])
}

func TestSelectionRemoveAbsentIsNoop(t *testing.T) {
	selection := Selection{1: true}
	selection.Remove(99)
	selection.Remove(1)
	assert.Empty(t, selection.Items([]CartItem{{ProductID: 1, Stock: 5}}))
}

func TestSelectionTotalRounding(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Price: 19.99, Quantity: 3, Stock: 5},
		{ProductID: 2, Price: 0.1, Quantity: 3, Stock: 5},
	}
	selection := NewSelection(items)

	// 59.97 + 0.30, exact in decimal arithmetic
	assert.Equal(t, 60.27, selection.Total(items))
}

func TestMembershipReducersArePure(t *testing.T) {
	original := NewMembership([]int64{1, 2})

	added := applyAdd(original, 3)
	assert.True(t, added.Contains(3))
	assert.False(t, original.Contains(3))

	removed := applyRemove(original, 1)
	assert.False(t, removed.Contains(1))
	assert.True(t, original.Contains(1))

	cleared := applyRemoveAll(original, []int64{1, 2})
	assert.Empty(t, cleared.IDs())
	assert.Len(t, original.IDs(), 2)
}
