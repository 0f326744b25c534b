package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
	lastClose     *prometheus.GaugeVec
	throttleWait  prometheus.Histogram
	fetchDuration *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_fetches_total",
				Help: "Total number of provider fetches by symbol",
			},
			[]string{"symbol"},
		),
		fetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_fetch_errors_total",
				Help: "Total number of fetch errors by category",
			},
			[]string{"category"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_series_cache_total",
				Help: "Series cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		lastClose: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budgetwise_last_close_price",
				Help: "Last observed close price for a symbol",
			},
			[]string{"symbol"},
		),
		throttleWait: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budgetwise_throttle_wait_seconds",
				Help:    "Time spent waiting on the provider throttle",
				Buckets: []float64{0, 0.5, 1, 2, 4, 8, 12, 16, 24, 36},
			},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetwise_fetch_duration_seconds",
				Help:    "Duration of provider fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"symbol"},
		),
	}
}

// RecordFetch records a completed provider fetch.
func (r *Recorder) RecordFetch(symbol string, seconds float64) {
	r.fetchesTotal.WithLabelValues(symbol).Inc()
	r.fetchDuration.WithLabelValues(symbol).Observe(seconds)
}

// RecordFetchError records a fetch error by category.
func (r *Recorder) RecordFetchError(category string) {
	r.fetchErrors.WithLabelValues(category).Inc()
}

// RecordCacheLookup records a series cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.cacheHits.WithLabelValues(outcome).Inc()
}

// RecordLastClose records the latest close price for a symbol.
func (r *Recorder) RecordLastClose(symbol string, price float64) {
	r.lastClose.WithLabelValues(symbol).Set(price)
}

// RecordThrottleWait records time spent waiting on the throttle.
func (r *Recorder) RecordThrottleWait(seconds float64) {
	r.throttleWait.Observe(seconds)
}
