package api

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/middleware"
	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/policies"
	"github.com/edumorph/mcp-service/internal/prompt"
)

var tracer = otel.Tracer("edumorph-mcp")

// decodeAdaptRequest unmarshals an adaptation request on top of the default
// context so omitted fields keep their documented defaults.
func decodeAdaptRequest(r *http.Request) (*models.AdaptRequest, error) {
	req := models.AdaptRequest{Context: models.DefaultContext()}
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	req.Context.ApplyDefaults()
	return &req, nil
}

// AdaptHandler handles POST /adapt: the full enrichment, personalization,
// generation and postprocessing pipeline. The request never fails past
// decoding; every backend problem degrades to the deterministic fallback
// text.
func (s *Server) AdaptHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "AdaptHandler",
		trace.WithAttributes(
			attribute.String("http.method", "POST"),
			attribute.String("http.route", "/adapt"),
		))
	defer span.End()

	logger := middleware.LoggerFromRequest(r, s.Logger)

	start := time.Now()
	const endpoint = "adapt"
	const method = "POST"

	req, err := decodeAdaptRequest(r)
	if err != nil {
		logger.Error("decode request", zap.Error(err), zap.String("event_type", "adapt_request"))
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp := s.AdaptLesson(ctx, *req, clientIP(r), logger)

	if err := writeJSON(w, resp); err != nil {
		logger.Error("write response", zap.Error(err))
	}
	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}

// AdaptLesson runs the full adaptation pipeline: enrichment, personalization
// lookup, prompt assembly, generation (or its deterministic fallback) and the
// postprocessing chain. It never fails; every backend problem degrades to
// fallback text. Shared by the HTTP and MCP surfaces.
func (s *Server) AdaptLesson(ctx context.Context, req models.AdaptRequest, ip string, logger *zap.Logger) models.AdaptResponse {
	reqCtx := s.Enricher.Enrich(req.Context, ip)

	// Personalization must complete, successfully or via fallback, before
	// prompt construction.
	score := s.Scorer.Score(ctx, reqCtx.User.Grade, reqCtx.Content.Subject, reqCtx.Content.Difficulty)
	if score.Degraded {
		logger.Debug("personalization degraded", zap.String("reason", score.Reason))
	}

	built := prompt.Build(reqCtx, req.LessonContent, score)

	adapted, err := s.Generator.Complete(ctx, built)
	if err != nil {
		// Transport failure from the generation backend; an empty completion
		// lands in the branch below. Both resolve to the same fallback text.
		logger.Warn("generation backend failed", zap.Error(err))
		s.Metrics.IncrementFallbacks("generation_error")
		adapted = ""
	}
	if adapted == "" {
		if err == nil {
			logger.Debug("generation unavailable, serving fallback")
			s.Metrics.IncrementFallbacks("generation_empty")
		}
		adapted = prompt.Fallback(reqCtx, req.LessonContent)
	}

	adapted = policies.Apply(reqCtx, adapted)

	return models.AdaptResponse{
		AdaptedText:          adapted,
		Cached:               false,
		PersonalizationScore: score.Score,
		PersonalizationLabel: score.Label,
		Language:             reqCtx.User.PreferredLanguage,
		Region:               reqCtx.User.Region,
		Grade:                reqCtx.User.Grade,
	}
}
