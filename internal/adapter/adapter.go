// Package adapter implements the template-based cultural adaptation path: a
// low-latency alternative to the generative pipeline that fills subject and
// region specific templates with sampled cultural variables. It never calls
// the network and never fails a request.
package adapter

import (
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/enrich"
	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/observability"
)

// Scores reported per attempted adaptation level.
var levelScores = map[string]float64{
	models.AdaptationLow:    0.3,
	models.AdaptationMedium: 0.6,
	models.AdaptationHigh:   0.9,
}

// Adapter performs template-based cultural adaptation. The random source is
// injectable so tests can force deterministic template and variable
// selection.
type Adapter struct {
	logger   *zap.Logger
	metrics  observability.MetricsRegistry
	expander *Expander

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an Adapter seeded from the provided source. Pass
// rand.NewSource(time.Now().UnixNano()) in production.
func New(logger *zap.Logger, metrics observability.MetricsRegistry, src rand.Source) *Adapter {
	return &Adapter{
		logger:   logger,
		metrics:  metrics,
		expander: NewExpander(logger),
		rng:      rand.New(src),
	}
}

// NewForTesting creates an Adapter with an isolated metrics registry and the
// given seed.
func NewForTesting(logger *zap.Logger, seed int64) *Adapter {
	return &Adapter{
		logger:   logger,
		metrics:  observability.NewNoOpRegistry(),
		expander: NewExpanderForTesting(logger),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Adapt runs the template adaptation state machine over the request's
// adaptation level. It is terminal per request: no retries, no generation
// calls, and any missing template variable degrades to the original content.
func (a *Adapter) Adapt(req models.AdaptRequest) models.AdaptResponse {
	ctx := req.Context
	ctx.ApplyDefaults()
	ctx = enrich.AttachCulture(ctx)

	resp := models.AdaptResponse{
		AdaptedText: req.LessonContent,
		Language:    ctx.User.PreferredLanguage,
		Region:      ctx.User.Region,
		Grade:       ctx.User.Grade,
	}

	level := strings.ToLower(ctx.Content.AdaptationLevel)
	if level == models.AdaptationNone {
		resp.PersonalizationLabel = "No personalization"
		return resp
	}
	if _, ok := levelScores[level]; !ok {
		level = models.AdaptationMedium
	}

	subject := strings.ToLower(ctx.Content.Subject)
	if _, ok := subjectTemplates[subject]; !ok {
		subject = "general"
	}

	bank := subjectTemplates[subject][level]

	a.mu.Lock()
	template := bank[a.rng.Intn(len(bank))]
	vars := sampleVariables(a.rng, ctx.User.Region, subject)
	a.mu.Unlock()

	adapted, err := a.expander.Expand(template, vars)
	if err != nil {
		// Fail soft: serve the original content but still report the
		// attempted adaptation level.
		a.logger.Error("template adaptation failed",
			zap.String("subject", subject),
			zap.String("level", level),
			zap.Error(err))
		adapted = req.LessonContent
	}

	a.metrics.IncrementTemplateAdaptations(subject, level)

	resp.AdaptedText = adapted
	resp.PersonalizationScore = levelScores[level]
	resp.PersonalizationLabel = capitalize(level) + " cultural adaptation"
	return resp
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
