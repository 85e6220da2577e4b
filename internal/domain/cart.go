package domain

import (
	"fmt"
	"slices"
)

// LineItem is one product in the cart with its quantity. Quantity is at
// least 1 while the item is present.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity, in cents.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// CartState is the full cart: items in insertion order, the derived totals
// and the visibility flag. TotalItems and TotalPrice always equal the sums
// over Items.
type CartState struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
	IsCartOpen bool       `json:"isCartOpen"`
}

// EmptyCart returns the default cart state.
func EmptyCart() CartState {
	return CartState{Items: []LineItem{}}
}

// Clone returns a deep copy of the state.
func (s CartState) Clone() CartState {
	out := s
	out.Items = make([]LineItem, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

// FindItemIndex returns the index of the line item for productID, or -1.
func (s CartState) FindItemIndex(productID string) int {
	return slices.IndexFunc(s.Items, func(li LineItem) bool {
		return li.ID == productID
	})
}

// Recalculate recomputes TotalItems and TotalPrice from Items.
func (s *CartState) Recalculate() {
	var count int
	var total int64
	for _, li := range s.Items {
		count += li.Quantity
		total += li.Subtotal()
	}
	s.TotalItems = count
	s.TotalPrice = total
}

// Validate checks the per-item invariants of a state read from storage:
// a non-empty unique product id, quantity of at least 1, non-negative price.
func (s CartState) Validate() error {
	seen := make(map[string]struct{}, len(s.Items))
	for i, li := range s.Items {
		if li.ID == "" {
			return fmt.Errorf("item %d: missing product id", i)
		}
		if _, dup := seen[li.ID]; dup {
			return fmt.Errorf("item %d: duplicate product id %s", i, li.ID)
		}
		seen[li.ID] = struct{}{}
		if li.Quantity < 1 {
			return fmt.Errorf("item %s: quantity %d below 1", li.ID, li.Quantity)
		}
		if li.Price < 0 {
			return fmt.Errorf("item %s: negative price %d", li.ID, li.Price)
		}
	}
	return nil
}
