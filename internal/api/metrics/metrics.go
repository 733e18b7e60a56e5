// Package metrics defines and registers the custom Prometheus metrics for
// the Justice Buddy backend. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "justicebuddy"

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts blog posts created through the admin API.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created.",
	},
)

// ChatRequestsTotal counts assistant requests.
// Label:
//   - outcome: "ok", "invalid", "misconfigured", "upstream_error" or "error"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of assistant chat requests, by outcome.",
	},
	[]string{"outcome"},
)

// ChatUpstreamDuration measures the latency of the generative-AI call.
var ChatUpstreamDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_upstream_duration_seconds",
		Help:      "Duration of calls to the generative-AI provider.",
		Buckets:   prometheus.DefBuckets,
	},
)
