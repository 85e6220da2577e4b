package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/store"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// CatalogHandler handles HTTP requests for the product listing and its
// filters.
type CatalogHandler struct {
	catalog *store.FilterStore
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(catalog *store.FilterStore, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// --- Request DTOs ---

// SetCategoryRequest selects a category, or "all".
type SetCategoryRequest struct {
	Category string `json:"category" validate:"required,max=100"`
}

// SetPriceRangeRequest sets the price range in cents. Any pair of bounds is
// accepted; an inverted or out-of-catalog range matches nothing.
type SetPriceRangeRequest struct {
	Min *int64 `json:"min" validate:"required"`
	Max *int64 `json:"max" validate:"required"`
}

// SetSearchRequest sets the search query. An empty query clears it.
type SetSearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// SetSortRequest sets the sort mode. Supported modes are checked against
// domain.ValidSortModes by the handler.
type SetSortRequest struct {
	Sort string `json:"sort" validate:"required"`
}

// --- Handlers ---

// ListProducts handles GET /api/v1/catalog/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, h.catalog.View())
}

// GetProduct handles GET /api/v1/catalog/products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")
	p, ok := h.catalog.Product(id)
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", id), h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, toProductResponse(p))
}

// GetFacets handles GET /api/v1/catalog/facets
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, facetsResponse{
		Categories:  h.catalog.Categories(),
		PriceBounds: h.catalog.PriceBounds(),
		SortModes:   domain.ValidSortModes(),
	})
}

// SetCategory handles PUT /api/v1/catalog/filters/category
func (h *CatalogHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	var req SetCategoryRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.writeView(w, h.catalog.SetCategoryFilter(r.Context(), req.Category))
}

// SetPriceRange handles PUT /api/v1/catalog/filters/price
func (h *CatalogHandler) SetPriceRange(w http.ResponseWriter, r *http.Request) {
	var req SetPriceRangeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.writeView(w, h.catalog.SetPriceRangeFilter(r.Context(), domain.PriceRange{Min: *req.Min, Max: *req.Max}))
}

// SetSearch handles PUT /api/v1/catalog/filters/search
func (h *CatalogHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req SetSearchRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.writeView(w, h.catalog.SetSearchQuery(r.Context(), req.Query))
}

// SetSort handles PUT /api/v1/catalog/filters/sort
func (h *CatalogHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req SetSortRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	mode, ok := domain.ParseSortMode(req.Sort)
	if !ok {
		httputil.WriteError(w, r, apperrors.InvalidInput("unsupported sort mode "+req.Sort), h.logger)
		return
	}
	h.writeView(w, h.catalog.SetSortOption(r.Context(), mode))
}

// ResetFilters handles DELETE /api/v1/catalog/filters
func (h *CatalogHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, h.catalog.ResetFilters(r.Context()))
}

func (h *CatalogHandler) writeView(w http.ResponseWriter, v store.CatalogView) {
	httputil.WriteData(w, http.StatusOK, catalogResponse{
		Products: toProductResponses(v.Products),
		Total:    v.Total,
		Criteria: v.Criteria,
	})
}
