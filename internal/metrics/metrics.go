// Package metrics holds the Prometheus collectors exported on the metrics endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "passcheck"

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(checksTotal)
	prometheus.MustRegister(generatedTotal)
}

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by method, route and status",
	},
	[]string{"method", "route", "status"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route",
		Buckets:   DefaultBuckets,
	},
	[]string{"method", "route"},
)

var checksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "strength_checks_total",
		Help:      "Total number of password checks by resulting strength label",
	},
	[]string{"strength"},
)

var generatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "passwords_generated_total",
		Help:      "Total number of generated passwords",
	},
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCheck records one check that produced the given strength label.
func ObserveCheck(label string) {
	checksTotal.WithLabelValues(label).Inc()
}

// ObserveGenerated records one generated password.
func ObserveGenerated() {
	generatedTotal.Inc()
}
