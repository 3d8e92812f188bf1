package api

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/middleware"
	"github.com/edumorph/mcp-service/internal/models"
)

// TranslateHandler handles POST /translate. The translation service absorbs
// every backend failure, so past decoding the endpoint always answers 200
// with a best-effort payload.
func (s *Server) TranslateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "TranslateHandler",
		trace.WithAttributes(
			attribute.String("http.method", "POST"),
			attribute.String("http.route", "/translate"),
		))
	defer span.End()

	logger := middleware.LoggerFromRequest(r, s.Logger)

	start := time.Now()
	const endpoint = "translate"
	const method = "POST"

	req := models.TranslateRequest{PreserveFormatting: true}
	if err := decodeJSON(r, &req); err != nil {
		logger.Error("decode request", zap.Error(err), zap.String("event_type", "translate_request"))
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp := s.Translator.Translate(ctx, req)

	if err := writeJSON(w, resp); err != nil {
		logger.Error("write response", zap.Error(err))
	}
	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}
