package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the engine's metrics hooks using Prometheus.
type Recorder struct {
	fetches        *prometheus.CounterVec
	fallbacks      *prometheus.CounterVec
	skippedRecords prometheus.Counter
	results        *prometheus.HistogramVec
	latency        *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates a Recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinscout",
				Name:      "fetches_total",
				Help:      "Live marketplace fetch attempts by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		fallbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinscout",
				Name:      "fallbacks_total",
				Help:      "Times the simulated market replaced live data",
			},
			[]string{"reason"},
		),
		skippedRecords: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "skinscout",
				Name:      "skipped_records_total",
				Help:      "Marketplace records dropped for invalid fields",
			},
		),
		results: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "skinscout",
				Name:      "query_results",
				Help:      "Number of opportunities returned per query",
				Buckets:   []float64{0, 1, 3, 5, 10, 25},
			},
			[]string{"query"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "skinscout",
				Name:      "query_duration_seconds",
				Help:      "Duration of engine queries in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"query", "source"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinscout",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "skinscout",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method"},
		),
	}
}

// RecordFetch records a live fetch attempt.
func (r *Recorder) RecordFetch(source string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	r.fetches.WithLabelValues(source, outcome).Inc()
}

// RecordFallback records a switch to simulated data.
func (r *Recorder) RecordFallback(reason string) {
	r.fallbacks.WithLabelValues(reason).Inc()
}

// RecordSkipped records dropped marketplace records.
func (r *Recorder) RecordSkipped(n int) {
	if n > 0 {
		r.skippedRecords.Add(float64(n))
	}
}

// RecordQuery records one engine query.
func (r *Recorder) RecordQuery(query, source string, results int, seconds float64) {
	r.results.WithLabelValues(query).Observe(float64(results))
	r.latency.WithLabelValues(query, source).Observe(seconds)
}

// RecordHTTP records one served HTTP request. Route should be the templated
// path to keep label cardinality low.
func (r *Recorder) RecordHTTP(route, method string, status int, seconds float64) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(seconds)
}
