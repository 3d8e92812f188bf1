package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Expander substitutes {placeholder} tokens in adaptation templates with
// sampled cultural variables, with observability on every expansion.
type Expander struct {
	logger *zap.Logger

	expansionCounter  *prometheus.CounterVec
	expansionDuration prometheus.Histogram
	missingCounter    *prometheus.CounterVec
}

// NewExpander creates an expander registered on the global Prometheus
// registry.
func NewExpander(logger *zap.Logger) *Expander {
	return newExpander(logger, promauto.With(prometheus.DefaultRegisterer))
}

// NewExpanderForTesting creates an expander with an isolated metrics registry
// so parallel tests do not collide on collector registration.
func NewExpanderForTesting(logger *zap.Logger) *Expander {
	return newExpander(logger, promauto.With(prometheus.NewRegistry()))
}

func newExpander(logger *zap.Logger, factory promauto.Factory) *Expander {
	return &Expander{
		logger: logger,
		expansionCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edumorph_template_expansions_total",
				Help: "Total number of template placeholder expansions",
			},
			[]string{"success"},
		),
		expansionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "edumorph_template_expansion_duration_seconds",
				Help:    "Time taken to expand all placeholders in a template",
				Buckets: prometheus.DefBuckets,
			},
		),
		missingCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edumorph_template_missing_variables_total",
				Help: "Total number of template placeholders with no sampled variable",
			},
			[]string{"variable"},
		),
	}
}

// Expand replaces every {name} token in template with vars[name]. A token
// with no matching variable fails the whole expansion; the caller degrades
// to the unadapted content.
func (e *Expander) Expand(template string, vars map[string]string) (string, error) {
	start := time.Now()
	defer func() {
		e.expansionDuration.Observe(time.Since(start).Seconds())
	}()

	names := placeholders(template)
	if len(names) == 0 {
		return template, nil
	}

	replacements := make([]string, 0, len(names)*2)
	for _, name := range names {
		value, ok := vars[name]
		if !ok {
			e.expansionCounter.WithLabelValues("false").Inc()
			e.missingCounter.WithLabelValues(name).Inc()
			e.logger.Error("missing variable in template",
				zap.String("variable", name),
				zap.String("template", template))
			return "", fmt.Errorf("missing variable %q", name)
		}
		replacements = append(replacements, "{"+name+"}", value)
	}

	e.expansionCounter.WithLabelValues("true").Inc()
	return strings.NewReplacer(replacements...).Replace(template), nil
}

// placeholders extracts the distinct {name} tokens of a template in order of
// first appearance.
func placeholders(template string) []string {
	var names []string
	seen := map[string]bool{}
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			break
		}
		name := template[i+1 : i+end]
		if name != "" && !strings.ContainsAny(name, "{ \n") && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += end
	}
	return names
}
