package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/utafrali/storefront/internal/domain"
)

// CatalogView is the derived product list together with the criteria that
// produced it.
type CatalogView struct {
	Products []domain.Product      `json:"products"`
	Total    int                   `json:"total"`
	Criteria domain.FilterCriteria `json:"criteria"`
}

// FilterStore holds the catalog and the active filter criteria. The filtered
// list is recomputed on every criteria change and never edited directly.
type FilterStore struct {
	mu         sync.RWMutex
	all        []domain.Product
	index      map[string]int
	categories []string
	bounds     domain.PriceRange
	criteria   domain.FilterCriteria
	filtered   []domain.Product
	logger     *slog.Logger
}

// NewFilterStore creates a filter store over products with default criteria.
// The product slice is copied.
func NewFilterStore(products []domain.Product, logger *slog.Logger) *FilterStore {
	all := slices.Clone(products)
	index := make(map[string]int, len(all))
	for i, p := range all {
		index[p.ID] = i
	}

	s := &FilterStore{
		all:        all,
		index:      index,
		categories: domain.Categories(all),
		bounds:     domain.PriceBounds(all),
		logger:     logger,
	}
	s.criteria = domain.DefaultCriteria(s.bounds)
	s.filtered = domain.Derive(s.all, s.criteria)
	return s
}

// SetCategoryFilter selects one category, or every product for
// domain.CategoryAll.
func (s *FilterStore) SetCategoryFilter(ctx context.Context, category string) CatalogView {
	return s.update(ctx, "category", func(c *domain.FilterCriteria) { c.Category = category })
}

// SetPriceRangeFilter sets the inclusive price range in cents. An inverted range
// is accepted and matches nothing.
func (s *FilterStore) SetPriceRangeFilter(ctx context.Context, r domain.PriceRange) CatalogView {
	return s.update(ctx, "price", func(c *domain.FilterCriteria) { c.PriceRange = r })
}

// SetSearchQuery sets the free-text query. An empty query disables search.
func (s *FilterStore) SetSearchQuery(ctx context.Context, query string) CatalogView {
	return s.update(ctx, "search", func(c *domain.FilterCriteria) { c.SearchQuery = query })
}

// SetSortOption sets the sort mode. Unsupported modes order like
// domain.SortFeatured.
func (s *FilterStore) SetSortOption(ctx context.Context, mode domain.SortMode) CatalogView {
	return s.update(ctx, "sort", func(c *domain.FilterCriteria) { c.Sort = mode })
}

// ResetFilters restores the default criteria.
func (s *FilterStore) ResetFilters(ctx context.Context) CatalogView {
	return s.update(ctx, "reset", func(c *domain.FilterCriteria) { *c = domain.DefaultCriteria(s.bounds) })
}

func (s *FilterStore) update(ctx context.Context, filter string, apply func(*domain.FilterCriteria)) CatalogView {
	s.mu.Lock()
	apply(&s.criteria)
	s.filtered = domain.Derive(s.all, s.criteria)
	view := s.viewLocked()
	s.mu.Unlock()

	catalogFilterUpdatesTotal.WithLabelValues(filter).Inc()
	s.logger.DebugContext(ctx, "catalog filters updated",
		slog.String("filter", filter),
		slog.Int("matches", view.Total),
	)
	return view
}

func (s *FilterStore) viewLocked() CatalogView {
	return CatalogView{
		Products: slices.Clone(s.filtered),
		Total:    len(s.filtered),
		Criteria: s.criteria,
	}
}

// View returns the current filtered list and criteria.
func (s *FilterStore) View() CatalogView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

// FilteredProducts returns a copy of the current filtered list.
func (s *FilterStore) FilteredProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filtered)
}

// AllProducts returns a copy of the full catalog in source order.
func (s *FilterStore) AllProducts() []domain.Product {
	return slices.Clone(s.all)
}

// Product looks up a catalog product by id.
func (s *FilterStore) Product(id string) (domain.Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.all[i], true
}

// Criteria returns the active criteria.
func (s *FilterStore) Criteria() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Categories returns "all" followed by the catalog categories.
func (s *FilterStore) Categories() []string {
	return slices.Clone(s.categories)
}

// PriceBounds returns the catalog price bounds in cents.
func (s *FilterStore) PriceBounds() domain.PriceRange {
	return s.bounds
}
