package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/internal/store"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

const serviceName = "storefront"

// RouterOptions carries the tunable middleware settings.
type RouterOptions struct {
	CORS middleware.CORSConfig
	// Per-client limit applied to the mutating routes. Zero RPS disables it.
	RateLimitRPS   float64
	RateLimitBurst int
	// Proxies whose forwarding headers identify the client for rate limiting.
	TrustedProxies middleware.TrustedProxies
}

// DefaultRouterOptions allows every origin and applies no rate limit.
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{CORS: middleware.DefaultCORSConfig()}
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	cartStore *store.CartStore,
	filterStore *store.FilterStore,
	healthHandler *health.Handler,
	logger *slog.Logger,
	opts RouterOptions,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(opts.CORS))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	cartHandler := NewCartHandler(cartStore, filterStore, logger)
	catalogHandler := NewCatalogHandler(filterStore, logger)
	limit := middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, opts.TrustedProxies, logger)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", cartHandler.GetCart)

		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/toggle", cartHandler.ToggleCart)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{productId}/decrement", cartHandler.DecrementItem)
			r.Delete("/items/{productId}", cartHandler.DeleteItem)
		})
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productId}", catalogHandler.GetProduct)
		r.Get("/facets", catalogHandler.GetFacets)

		r.Route("/filters", func(r chi.Router) {
			r.Use(limit)
			r.Delete("/", catalogHandler.ResetFilters)
			r.Put("/category", catalogHandler.SetCategory)
			r.Put("/price", catalogHandler.SetPriceRange)
			r.Put("/search", catalogHandler.SetSearch)
			r.Put("/sort", catalogHandler.SetSort)
		})
	})

	return r
}
