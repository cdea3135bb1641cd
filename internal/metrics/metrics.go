// Package metrics holds the prometheus collectors for the state engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchRequestsTotal counts search requests actually issued to the
	// backend, i.e. after debounce coalescing and the redundant-term guard.
	SearchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_requests_total",
		Help: "Search requests issued to the product backend",
	})

	// SearchStaleDroppedTotal counts responses discarded because the term
	// changed while the request was in flight.
	SearchStaleDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_stale_responses_dropped_total",
		Help: "Search responses dropped by stale-response suppression",
	})

	// SearchDebounceCancelsTotal counts pending debounce timers cancelled
	// by a newer keystroke.
	SearchDebounceCancelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_debounce_cancels_total",
		Help: "Debounce timers cancelled by a newer keystroke",
	})

	// CatalogRecomputesTotal counts full recomputations of the filtered
	// product view.
	CatalogRecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_view_recomputes_total",
		Help: "Full recomputations of the filtered catalog view",
	})
)
