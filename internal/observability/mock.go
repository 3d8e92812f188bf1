package observability

import (
	"sync"
	"time"
)

// MockMetricsRegistry records increments for assertions in tests.
type MockMetricsRegistry struct {
	mu sync.Mutex

	Requests                map[string]int
	PersonalizationOutcomes map[string]int
	GenerationOutcomes      map[string]int
	Fallbacks               map[string]int
	TemplateAdaptations     map[string]int
	Translations            map[string]int
}

// NewMockMetricsRegistry creates an empty mock registry.
func NewMockMetricsRegistry() *MockMetricsRegistry {
	return &MockMetricsRegistry{
		Requests:                map[string]int{},
		PersonalizationOutcomes: map[string]int{},
		GenerationOutcomes:      map[string]int{},
		Fallbacks:               map[string]int{},
		TemplateAdaptations:     map[string]int{},
		Translations:            map[string]int{},
	}
}

func (m *MockMetricsRegistry) IncrementRequests(endpoint, method, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint+"/"+method+"/"+status]++
}

func (m *MockMetricsRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
}

func (m *MockMetricsRegistry) IncrementPersonalizationRequests(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersonalizationOutcomes[outcome]++
}

func (m *MockMetricsRegistry) RecordPersonalizationLatency(duration time.Duration) {}
func (m *MockMetricsRegistry) RecordPersonalizationScore(score float64)            {}

func (m *MockMetricsRegistry) IncrementGenerationRequests(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerationOutcomes[outcome]++
}

func (m *MockMetricsRegistry) RecordGenerationLatency(duration time.Duration) {}

func (m *MockMetricsRegistry) IncrementFallbacks(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fallbacks[reason]++
}

func (m *MockMetricsRegistry) IncrementTemplateAdaptations(subject, level string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TemplateAdaptations[subject+"/"+level]++
}

func (m *MockMetricsRegistry) IncrementTranslations(targetLanguage, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Translations[targetLanguage+"/"+outcome]++
}

// Count returns the request count for an endpoint/method/status key.
func (m *MockMetricsRegistry) Count(endpoint, method, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Requests[endpoint+"/"+method+"/"+status]
}
