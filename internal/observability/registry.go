package observability

import "time"

// MetricsRegistry provides an interface for recording application metrics.
// Handlers and clients depend on this interface rather than on the global
// Prometheus collectors so tests can substitute a no-op.
type MetricsRegistry interface {
	// HTTP request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Personalization scoring metrics
	IncrementPersonalizationRequests(outcome string)
	RecordPersonalizationLatency(duration time.Duration)
	RecordPersonalizationScore(score float64)

	// Generation backend metrics
	IncrementGenerationRequests(outcome string)
	RecordGenerationLatency(duration time.Duration)

	// Degradation metrics
	IncrementFallbacks(reason string)

	// Template adaptation metrics
	IncrementTemplateAdaptations(subject, level string)

	// Translation metrics
	IncrementTranslations(targetLanguage, outcome string)
}

// PrometheusRegistry implements MetricsRegistry on the package's Prometheus
// collectors.
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry.
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementPersonalizationRequests(outcome string) {
	PersonalizationRequests.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) RecordPersonalizationLatency(duration time.Duration) {
	PersonalizationLatency.Observe(duration.Seconds())
}

func (r *PrometheusRegistry) RecordPersonalizationScore(score float64) {
	PersonalizationScore.Observe(score)
}

func (r *PrometheusRegistry) IncrementGenerationRequests(outcome string) {
	GenerationRequests.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) RecordGenerationLatency(duration time.Duration) {
	GenerationLatency.Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementFallbacks(reason string) {
	FallbackCount.WithLabelValues(reason).Inc()
}

func (r *PrometheusRegistry) IncrementTemplateAdaptations(subject, level string) {
	TemplateAdaptations.WithLabelValues(subject, level).Inc()
}

func (r *PrometheusRegistry) IncrementTranslations(targetLanguage, outcome string) {
	TranslationCount.WithLabelValues(targetLanguage, outcome).Inc()
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing.
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry.
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}
func (r *NoOpRegistry) IncrementPersonalizationRequests(outcome string)                      {}
func (r *NoOpRegistry) RecordPersonalizationLatency(duration time.Duration)                  {}
func (r *NoOpRegistry) RecordPersonalizationScore(score float64)                             {}
func (r *NoOpRegistry) IncrementGenerationRequests(outcome string)                           {}
func (r *NoOpRegistry) RecordGenerationLatency(duration time.Duration)                       {}
func (r *NoOpRegistry) IncrementFallbacks(reason string)                                     {}
func (r *NoOpRegistry) IncrementTemplateAdaptations(subject, level string)                   {}
func (r *NoOpRegistry) IncrementTranslations(targetLanguage, outcome string)                 {}
