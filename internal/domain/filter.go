package domain

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the category selector that matches every product.
const CategoryAll = "all"

// SortMode orders the derived product list.
type SortMode string

// Sort modes.
const (
	SortFeatured  SortMode = "featured"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
)

// ValidSortModes returns every supported sort mode.
func ValidSortModes() []SortMode {
	return []SortMode{SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}
}

// ParseSortMode converts s to a SortMode, reporting whether it is supported.
func ParseSortMode(s string) (SortMode, bool) {
	m := SortMode(s)
	return m, slices.Contains(ValidSortModes(), m)
}

// PriceRange is an inclusive price interval in cents. Min may exceed Max, in
// which case nothing is contained.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Contains reports whether price lies within [Min, Max].
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterCriteria is the active set of filter and sort parameters.
type FilterCriteria struct {
	Category    string     `json:"category"`
	PriceRange  PriceRange `json:"priceRange"`
	SearchQuery string     `json:"searchQuery"`
	Sort        SortMode   `json:"sort"`
}

// DefaultCriteria returns the initial criteria for a catalog with the given
// price bounds.
func DefaultCriteria(bounds PriceRange) FilterCriteria {
	return FilterCriteria{
		Category:   CategoryAll,
		PriceRange: bounds,
		Sort:       SortFeatured,
	}
}

// Categories returns CategoryAll followed by the distinct product categories
// in first-seen order.
func Categories(products []Product) []string {
	out := []string{CategoryAll}
	seen := map[string]struct{}{CategoryAll: {}}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

const centsPerUnit = 100

// PriceBounds returns the floor of the lowest and the ceiling of the highest
// price, both in whole currency units expressed as cents. An empty set
// yields the zero range.
func PriceBounds(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}
	lo, hi := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		lo = min(lo, p.Price)
		hi = max(hi, p.Price)
	}
	return PriceRange{Min: floorUnit(lo), Max: ceilUnit(hi)}
}

func floorUnit(v int64) int64 {
	q := v / centsPerUnit
	if v%centsPerUnit != 0 && v < 0 {
		q--
	}
	return q * centsPerUnit
}

func ceilUnit(v int64) int64 {
	q := v / centsPerUnit
	if v%centsPerUnit != 0 && v > 0 {
		q++
	}
	return q * centsPerUnit
}

// queryLower must be the lowercased search query.
func (c FilterCriteria) matches(p Product, queryLower string) bool {
	if c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if !c.PriceRange.Contains(p.Price) {
		return false
	}
	if queryLower != "" &&
		!strings.Contains(strings.ToLower(p.Title), queryLower) &&
		!strings.Contains(strings.ToLower(p.Description), queryLower) &&
		!strings.Contains(strings.ToLower(p.Category), queryLower) {
		return false
	}
	return true
}

// Matches reports whether p satisfies every active predicate of c.
func (c FilterCriteria) Matches(p Product) bool {
	return c.matches(p, strings.ToLower(c.SearchQuery))
}

// Derive filters products by c and sorts the result. The input slice is not
// modified and the result is never nil. Unknown sort modes order like
// SortFeatured.
func Derive(products []Product, c FilterCriteria) []Product {
	queryLower := strings.ToLower(c.SearchQuery)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.matches(p, queryLower) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortNameAsc, SortNameDesc:
		// Collators are not safe for concurrent use.
		col := collate.New(language.English)
		desc := c.Sort == SortNameDesc
		slices.SortStableFunc(out, func(a, b Product) int {
			if desc {
				return col.CompareString(b.Title, a.Title)
			}
			return col.CompareString(a.Title, b.Title)
		})
	default:
		out = partitionFeatured(out)
	}

	return out
}

// partitionFeatured moves featured products ahead of the rest, keeping the
// relative order within both groups.
func partitionFeatured(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	for _, p := range products {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}
