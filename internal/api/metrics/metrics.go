// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh token exchanges, by result.",
	},
	[]string{"result"},
)

// AuthDenialsTotal counts requests rejected by the authorization layer.
// Label:
//   - reason: "unauthenticated", "forbidden", or "conflict"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by guard checks, by reason.",
	},
	[]string{"reason"},
)

// RatingCacheTotal counts product-rating cache lookups.
// Label:
//   - result: "hit" or "miss"
var RatingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_cache_total",
		Help:      "Total number of rating cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
