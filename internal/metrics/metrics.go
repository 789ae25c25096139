package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the recommendation pipeline and the weather
// provider it depends on.

var (
	// Recommendation pipeline
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packmate_recommendations_total",
			Help: "Total number of packing recommendations by outcome",
		},
		[]string{"outcome"}, // "tailored", "fallback", "invalid"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packmate_recommendation_duration_seconds",
			Help:    "Time spent producing a packing recommendation",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packmate_recommendation_items",
			Help:    "Number of unique items in a recommendation",
			Buckets: []float64{5, 10, 20, 30, 40, 60, 80},
		},
	)

	SourceFaults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packmate_item_source_faults_total",
			Help: "Unexpected failures inside an item source or the merge step",
		},
		[]string{"source"},
	)

	ThemeTemplateMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packmate_theme_template_misses_total",
			Help: "Theme tags with no stored template",
		},
	)

	ThemeStoreErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packmate_theme_store_errors_total",
			Help: "Theme template lookups that failed for reasons other than a missing template",
		},
	)

	// Weather
	WeatherResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packmate_weather_resolutions_total",
			Help: "Weather snapshot resolutions by result",
		},
		[]string{"result"}, // "current", "forecast", "horizon_fallback" or a failure code
	)

	WeatherCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packmate_weather_cache_hits_total",
			Help: "Weather cache hits",
		},
	)

	WeatherCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packmate_weather_cache_misses_total",
			Help: "Weather cache misses",
		},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "packmate_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packmate_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)
)
