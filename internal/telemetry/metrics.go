// Package telemetry exposes Prometheus counters for a search run, plus
// a small helper to serve them over HTTP for `jst search --metrics-addr`.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jst"

// Metrics holds the counters a single traversal run increments.
type Metrics struct {
	WindowsEmitted prometheus.Counter
	MatcherHits    prometheus.Counter
}

// NewMetrics registers a fresh set of counters against its own registry,
// so repeated searches in the same process (or in tests) never collide
// on duplicate registration.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		WindowsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_emitted_total",
			Help:      "Fixed-size windows handed to the matcher.",
		}),
		MatcherHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matcher_hits_total",
			Help:      "Matches reported by the search matcher, one per covered sequence.",
		}),
	}, reg
}

// Handler returns an http.Handler serving reg in the Prometheus text
// exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server on addr exposing reg at /metrics. It
// blocks until the server stops or errors, matching net/http's own
// ListenAndServe contract.
func Serve(addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(reg))
	return http.ListenAndServe(addr, mux)
}
