// Package metrics exposes Prometheus instrumentation for outbound searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ldsmcp_searches_total",
		Help: "Outbound searches by provider family and outcome.",
	}, []string{"provider", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ldsmcp_search_duration_seconds",
		Help:    "Outbound search latency by provider family.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})
)

// ObserveSearch records one completed search. outcome is "ok" or the error
// kind string.
func ObserveSearch(provider, outcome string, elapsed time.Duration) {
	searchesTotal.WithLabelValues(provider, outcome).Inc()
	searchDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
