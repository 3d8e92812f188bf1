package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edumorph_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// personalization scoring calls labelled by outcome (success/degraded)
	PersonalizationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_personalization_requests_total",
			Help: "Total personalization scoring requests",
		},
		[]string{"outcome"},
	)

	// latency of personalization scoring calls
	PersonalizationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edumorph_personalization_duration_seconds",
			Help:    "Duration of personalization scoring requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	// distribution of scores returned by the scoring backend
	PersonalizationScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edumorph_personalization_score",
			Help:    "Histogram of personalization scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// generation backend calls labelled by outcome (success/empty/error/unkeyed)
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_generation_requests_total",
			Help: "Total generation backend requests",
		},
		[]string{"outcome"},
	)

	// latency of generation backend calls
	GenerationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edumorph_generation_duration_seconds",
			Help:    "Duration of generation backend requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	// fallback texts served in place of generated content, by reason
	FallbackCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_fallbacks_total",
			Help: "Total fallback texts served",
		},
		[]string{"reason"},
	)

	// template adaptations labelled by subject and level
	TemplateAdaptations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_template_adaptations_total",
			Help: "Total template-based adaptations",
		},
		[]string{"subject", "level"},
	)

	// translations labelled by target language and outcome
	TranslationCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edumorph_translations_total",
			Help: "Total translation requests",
		},
		[]string{"target_language", "outcome"},
	)
)

// RegisterMetrics registers all metrics with the default registry. It should
// be called once at startup.
func RegisterMetrics() {
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		PersonalizationRequests,
		PersonalizationLatency,
		PersonalizationScore,
		GenerationRequests,
		GenerationLatency,
		FallbackCount,
		TemplateAdaptations,
		TranslationCount,
	)
}
