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

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	cart    *store.CartStore
	catalog *store.FilterStore
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler. Added products are
// resolved against catalog.
func NewCartHandler(cart *store.CartStore, catalog *store.FilterStore, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=100"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	p, ok := h.catalog.Product(req.ProductID)
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", req.ProductID), h.logger)
		return
	}

	state := h.cart.AddToCart(r.Context(), p)
	httputil.WriteData(w, http.StatusOK, toCartResponse(state))
}

// DecrementItem handles POST /api/v1/cart/items/{productId}/decrement
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	state := h.cart.RemoveFromCart(r.Context(), domain.Product{ID: productID})
	httputil.WriteData(w, http.StatusOK, toCartResponse(state))
}

// DeleteItem handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	state := h.cart.DeleteFromCart(r.Context(), domain.Product{ID: productID})
	httputil.WriteData(w, http.StatusOK, toCartResponse(state))
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	state := h.cart.ClearCart(r.Context())
	httputil.WriteData(w, http.StatusOK, toCartResponse(state))
}

// ToggleCart handles POST /api/v1/cart/toggle
func (h *CartHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	state := h.cart.ToggleCartVisibility(r.Context())
	httputil.WriteData(w, http.StatusOK, toCartResponse(state))
}
