package store

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/logger"
)

func viewIDs(v CatalogView) []string {
	out := make([]string, len(v.Products))
	for i, p := range v.Products {
		out[i] = p.ID
	}
	return out
}

func newScenarioStore() *FilterStore {
	return NewFilterStore([]domain.Product{shirt, hat}, logger.Discard())
}

func TestNewFilterStore_Defaults(t *testing.T) {
	s := newScenarioStore()

	assert.Equal(t, domain.PriceRange{Min: 1000, Max: 2000}, s.PriceBounds())
	assert.Equal(t, []string{"all", "tops", "hats"}, s.Categories())

	c := s.Criteria()
	assert.Equal(t, domain.CategoryAll, c.Category)
	assert.Equal(t, s.PriceBounds(), c.PriceRange)
	assert.Empty(t, c.SearchQuery)
	assert.Equal(t, domain.SortFeatured, c.Sort)

	v := s.View()
	assert.Equal(t, []string{"1", "2"}, viewIDs(v))
	assert.Equal(t, 2, v.Total)
}

func TestNewFilterStore_EmptyCatalog(t *testing.T) {
	s := NewFilterStore(nil, logger.Discard())

	assert.Equal(t, domain.PriceRange{}, s.PriceBounds())
	assert.Equal(t, []string{"all"}, s.Categories())
	assert.NotNil(t, s.FilteredProducts())
	assert.Empty(t, s.FilteredProducts())
}

func TestFilterStore_Scenario(t *testing.T) {
	s := newScenarioStore()
	ctx := context.Background()

	v := s.SetCategoryFilter(ctx, "tops")
	assert.Equal(t, []string{"1"}, viewIDs(v))

	s.ResetFilters(ctx)
	v = s.SetSearchQuery(ctx, "hat")
	assert.Equal(t, []string{"2"}, viewIDs(v))
	assert.Equal(t, domain.CategoryAll, v.Criteria.Category)

	repo := newEmptyRepo()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	cart := NewCartStore(ctx, repo, nil, logger.Discard())

	p, ok := s.Product("2")
	require.True(t, ok)
	cart.AddToCart(ctx, p)
	got := cart.AddToCart(ctx, p)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "2", got.Items[0].ID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 2, got.TotalItems)
	assert.Equal(t, int64(2000), got.TotalPrice)
}

func TestFilterStore_CriteriaCompose(t *testing.T) {
	s := newScenarioStore()
	ctx := context.Background()

	s.SetPriceRangeFilter(ctx, domain.PriceRange{Min: 1500, Max: 2500})
	v := s.SetSearchQuery(ctx, "RED")
	assert.Equal(t, []string{"1"}, viewIDs(v))

	v = s.SetCategoryFilter(ctx, "hats")
	assert.Empty(t, v.Products)
	assert.Equal(t, 0, v.Total)
}

func TestFilterStore_InvertedPriceRange(t *testing.T) {
	s := newScenarioStore()

	v := s.SetPriceRangeFilter(context.Background(), domain.PriceRange{Min: 2000, Max: 1000})

	assert.NotNil(t, v.Products)
	assert.Empty(t, v.Products)
	assert.Equal(t, domain.PriceRange{Min: 2000, Max: 1000}, s.Criteria().PriceRange)
}

func TestFilterStore_Sort(t *testing.T) {
	s := newScenarioStore()
	ctx := context.Background()

	assert.Equal(t, []string{"2", "1"}, viewIDs(s.SetSortOption(ctx, domain.SortPriceAsc)))
	assert.Equal(t, []string{"1", "2"}, viewIDs(s.SetSortOption(ctx, domain.SortPriceDesc)))
	assert.Equal(t, []string{"2", "1"}, viewIDs(s.SetSortOption(ctx, domain.SortNameAsc)))
	assert.Equal(t, []string{"1", "2"}, viewIDs(s.SetSortOption(ctx, "unknown")))
}

func TestFilterStore_ResetRestoresDefaults(t *testing.T) {
	s := newScenarioStore()
	ctx := context.Background()
	defaults := s.Criteria()

	s.SetCategoryFilter(ctx, "hats")
	s.SetPriceRangeFilter(ctx, domain.PriceRange{Min: 0, Max: 1})
	s.SetSearchQuery(ctx, "x")
	s.SetSortOption(ctx, domain.SortNameDesc)
	v := s.ResetFilters(ctx)

	assert.Equal(t, defaults, v.Criteria)
	assert.Equal(t, []string{"1", "2"}, viewIDs(v))
}

func TestFilterStore_AllProductsUnaffected(t *testing.T) {
	s := newScenarioStore()

	s.SetCategoryFilter(context.Background(), "hats")
	all := s.AllProducts()
	all[0].Title = "mutated"

	require.Len(t, s.AllProducts(), 2)
	assert.Equal(t, "Red Shirt", s.AllProducts()[0].Title)
}

func TestFilterStore_Product(t *testing.T) {
	s := newScenarioStore()

	p, ok := s.Product("1")
	assert.True(t, ok)
	assert.Equal(t, "Red Shirt", p.Title)

	_, ok = s.Product("404")
	assert.False(t, ok)
}

func TestFilterStore_UpdateMetrics(t *testing.T) {
	s := newScenarioStore()
	c := catalogFilterUpdatesTotal.WithLabelValues("search")
	before := testutil.ToFloat64(c)

	s.SetSearchQuery(context.Background(), "shirt")

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestFilterStore_ConcurrentAccess(t *testing.T) {
	s := newScenarioStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.SetCategoryFilter(ctx, "tops")
			} else {
				s.ResetFilters(ctx)
			}
		}()
		go func() {
			defer wg.Done()
			v := s.View()
			for _, p := range v.Products {
				assert.True(t, v.Criteria.Matches(p))
			}
		}()
	}
	wg.Wait()
}
