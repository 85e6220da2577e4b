package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_actions_total",
			Help: "Cart actions dispatched, by action type and whether the state changed.",
		},
		[]string{"action", "changed"},
	)

	cartPersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_cart_persist_failures_total",
			Help: "Cart state writes that failed.",
		},
	)

	cartLoadFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_load_fallbacks_total",
			Help: "Startup loads that fell back to the empty cart, by reason.",
		},
		[]string{"reason"},
	)

	catalogFilterUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_filter_updates_total",
			Help: "Catalog filter criteria updates, by filter.",
		},
		[]string{"filter"},
	)
)

// Load fallback reasons.
const (
	fallbackNotFound    = "not_found"
	fallbackCorrupt     = "corrupt"
	fallbackInvalid     = "invalid"
	fallbackUnavailable = "unavailable"
)
