package domain

import "math"

// Product is an immutable catalog entry. Prices are in cents.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount"`
	ImageURL      string   `json:"imageUrl"`
	IsNew         bool     `json:"isNew"`
	Featured      bool     `json:"featured"`
	Size          string   `json:"size,omitempty"`
	Color         string   `json:"color,omitempty"`
}

// HasDiscount reports whether the product is priced below its original price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the discount relative to the original price,
// rounded to the nearest whole percent. Zero when there is no discount.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	orig := float64(*p.OriginalPrice)
	return int(math.Round((orig - float64(p.Price)) / orig * 100))
}
