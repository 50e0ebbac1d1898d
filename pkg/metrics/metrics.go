// Package metrics exposes the Prometheus instruments used by the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outfit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_recommendations_total",
			Help: "Recommendation requests by path and outcome",
		},
		[]string{"path", "outcome"},
	)

	WeatherBands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_weather_band_total",
			Help: "Weather bands selected for scored recommendations",
		},
		[]string{"band"},
	)

	FilterFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_filter_fallback_total",
			Help: "Times a filter matched nothing and the unfiltered set was returned",
		},
		[]string{"filter"},
	)

	TopScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_top_confidence_score",
			Help:    "Confidence score of the first ranked outfit",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordOutcome counts a recommendation attempt; path is "scored" or "occasion".
func RecordOutcome(path, outcome string) {
	Recommendations.WithLabelValues(path, outcome).Inc()
}
