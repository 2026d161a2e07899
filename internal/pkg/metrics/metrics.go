// Package metrics defines the custom Prometheus metrics for the admin
// dashboard backend. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// Mutation outcomes
const (
	OutcomeOK              = "ok"
	OutcomeValidationError = "validation_error"
	OutcomeDBError         = "db_error"
)

// MutationsTotal counts mutation pipeline runs.
// Labels:
//   - entity: "invoice" or "user"
//   - op: "create", "update", or "delete"
//   - outcome: "ok", "validation_error", or "db_error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of mutation pipeline runs, by entity, operation and outcome.",
	},
	[]string{"entity", "op", "outcome"},
)

// ListingCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// HTTPRequestDuration measures request handling time per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling, by method and route.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "route"},
)
