// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
)

// CartItem represents one line of the user's cart as served by the backend.
// The backend owns the persisted cart; this is the client's mirror of it.
type CartItem struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// Selectable reports whether the item can be included in a checkout selection.
// Out-of-stock items stay in the cart but cannot be selected.
func (i *CartItem) Selectable() bool {
	return i.Stock > 0
}

// WishlistItem represents one wishlisted product as served by the backend
type WishlistItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// ClampQuantity applies a +/- adjustment and clamps the result to [1, stock].
// Quantity edits are client-local; no backend call happens until the user
// re-adds the item or checks out.
func ClampQuantity(current, delta, stock int) int {
	quantity := current + delta
	if quantity < 1 {
		quantity = 1
	}
	if quantity > stock {
		quantity = stock
	}
	return quantity
}

// Selection is the set of cart product ids checked for checkout
type Selection map[int64]bool

// NewSelection selects every in-stock item, mirroring the cart view's default
func NewSelection(items []CartItem) Selection {
	selection := make(Selection, len(items))
	for _, item := range items {
		if item.Selectable() {
			selection[item.ProductID] = true
		}
	}
	return selection
}

// Toggle flips an item's selection. Out-of-stock items are ignored.
func (s Selection) Toggle(item CartItem) {
	if !item.Selectable() {
		return
	}
	if s[item.ProductID] {
		delete(s, item.ProductID)
	} else {
		s[item.ProductID] = true
	}
}

// Remove drops an item from the selection. Removing an absent id is a no-op,
// so clearing the last selected item never errors.
func (s Selection) Remove(productID int64) {
	delete(s, productID)
}

// Items returns the selected subset of items in their original order
func (s Selection) Items(items []CartItem) []CartItem {
	var selected []CartItem
	for _, item := range items {
		if s[item.ProductID] {
			selected = append(selected, item)
		}
	}
	return selected
}

// Total computes the price of the selected items, rounded to 2 decimals
func (s Selection) Total(items []CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		if !s[item.ProductID] {
			continue
		}
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	result, _ := total.Round(2).Float64()
	return result
}
