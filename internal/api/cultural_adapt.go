package api

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/middleware"
)

// CulturalAdaptHandler handles POST /cultural-adapt. It routes through the
// template-based adapter instead of the LLM path for low-latency adaptation.
func (s *Server) CulturalAdaptHandler(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "CulturalAdaptHandler",
		trace.WithAttributes(
			attribute.String("http.method", "POST"),
			attribute.String("http.route", "/cultural-adapt"),
		))
	defer span.End()

	logger := middleware.LoggerFromRequest(r, s.Logger)

	start := time.Now()
	const endpoint = "cultural_adapt"
	const method = "POST"

	req, err := decodeAdaptRequest(r)
	if err != nil {
		logger.Error("decode request", zap.Error(err), zap.String("event_type", "cultural_adapt_request"))
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp := s.Adapter.Adapt(*req)

	if err := writeJSON(w, resp); err != nil {
		logger.Error("write response", zap.Error(err))
	}
	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}
