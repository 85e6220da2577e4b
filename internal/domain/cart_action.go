package domain

// CartActionType tags a cart transition.
type CartActionType string

// Cart transitions.
const (
	ActionAddItem    CartActionType = "ADD_ITEM"
	ActionRemoveItem CartActionType = "REMOVE_ITEM"
	ActionDeleteItem CartActionType = "DELETE_ITEM"
	ActionClearCart  CartActionType = "CLEAR_CART"
	ActionToggleCart CartActionType = "TOGGLE_CART"
)

// CartAction is a tagged cart transition. Product is only read by the item
// actions.
type CartAction struct {
	Type    CartActionType
	Product Product
}

// AddItem increments the product's quantity, appending a new line if needed.
func AddItem(p Product) CartAction { return CartAction{Type: ActionAddItem, Product: p} }

// RemoveItem decrements the product's quantity, dropping the line at zero.
func RemoveItem(p Product) CartAction { return CartAction{Type: ActionRemoveItem, Product: p} }

// DeleteItem drops the product's line regardless of quantity.
func DeleteItem(p Product) CartAction { return CartAction{Type: ActionDeleteItem, Product: p} }

// ClearCart empties the cart and keeps the visibility flag.
func ClearCart() CartAction { return CartAction{Type: ActionClearCart} }

// ToggleCart flips the visibility flag.
func ToggleCart() CartAction { return CartAction{Type: ActionToggleCart} }

// ReduceCart applies action to state and returns the next state plus whether
// anything changed. The input state is never mutated. Totals of the returned
// state are recomputed from its items.
func ReduceCart(state CartState, action CartAction) (CartState, bool) {
	switch action.Type {
	case ActionAddItem:
		next := state.Clone()
		if i := next.FindItemIndex(action.Product.ID); i >= 0 {
			next.Items[i].Quantity++
		} else {
			next.Items = append(next.Items, LineItem{Product: action.Product, Quantity: 1})
		}
		next.Recalculate()
		return next, true

	case ActionRemoveItem:
		i := state.FindItemIndex(action.Product.ID)
		if i < 0 {
			return state, false
		}
		next := state.Clone()
		if next.Items[i].Quantity > 1 {
			next.Items[i].Quantity--
		} else {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}
		next.Recalculate()
		return next, true

	case ActionDeleteItem:
		i := state.FindItemIndex(action.Product.ID)
		if i < 0 {
			return state, false
		}
		next := state.Clone()
		next.Items = append(next.Items[:i], next.Items[i+1:]...)
		next.Recalculate()
		return next, true

	case ActionClearCart:
		next := EmptyCart()
		next.IsCartOpen = state.IsCartOpen
		return next, true

	case ActionToggleCart:
		next := state.Clone()
		next.IsCartOpen = !next.IsCartOpen
		return next, true

	default:
		return state, false
	}
}
