package http

import "github.com/utafrali/storefront/internal/domain"

// productResponse is a catalog product with its derived discount.
type productResponse struct {
	domain.Product
	DiscountPercent int `json:"discountPercent,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{Product: p, DiscountPercent: p.DiscountPercent()}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

type lineItemResponse struct {
	domain.LineItem
	Subtotal int64 `json:"subtotal"`
}

type cartResponse struct {
	Items      []lineItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice int64              `json:"totalPrice"`
	IsCartOpen bool               `json:"isCartOpen"`
}

func toCartResponse(s domain.CartState) cartResponse {
	items := make([]lineItemResponse, len(s.Items))
	for i, li := range s.Items {
		items[i] = lineItemResponse{LineItem: li, Subtotal: li.Subtotal()}
	}
	return cartResponse{
		Items:      items,
		TotalItems: s.TotalItems,
		TotalPrice: s.TotalPrice,
		IsCartOpen: s.IsCartOpen,
	}
}

type catalogResponse struct {
	Products []productResponse     `json:"products"`
	Total    int                   `json:"total"`
	Criteria domain.FilterCriteria `json:"criteria"`
}

type facetsResponse struct {
	Categories  []string          `json:"categories"`
	PriceBounds domain.PriceRange `json:"priceBounds"`
	SortModes   []domain.SortMode `json:"sortModes"`
}
