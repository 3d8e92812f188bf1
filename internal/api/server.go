package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/adapter"
	"github.com/edumorph/mcp-service/internal/config"
	"github.com/edumorph/mcp-service/internal/enrich"
	"github.com/edumorph/mcp-service/internal/llm"
	"github.com/edumorph/mcp-service/internal/observability"
	"github.com/edumorph/mcp-service/internal/personalization"
	"github.com/edumorph/mcp-service/internal/translation"
)

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger     *zap.Logger
	Enricher   *enrich.Enricher
	Scorer     *personalization.Client
	Generator  *llm.Client
	Adapter    *adapter.Adapter
	Translator *translation.Service
	Metrics    observability.MetricsRegistry
	Config     config.Config
}

// NewServer constructs a Server.
func NewServer(logger *zap.Logger, enricher *enrich.Enricher, scorer *personalization.Client, generator *llm.Client, templateAdapter *adapter.Adapter, translator *translation.Service, metrics observability.MetricsRegistry, cfg config.Config) *Server {
	return &Server{
		Logger:     logger,
		Enricher:   enricher,
		Scorer:     scorer,
		Generator:  generator,
		Adapter:    templateAdapter,
		Translator: translator,
		Metrics:    metrics,
		Config:     cfg,
	}
}

// Routes registers all handlers on the given router.
func (s *Server) Routes(r *mux.Router) {
	r.HandleFunc("/adapt", s.AdaptHandler).Methods("POST")
	r.HandleFunc("/cultural-adapt", s.CulturalAdaptHandler).Methods("POST")
	r.HandleFunc("/translate", s.TranslateHandler).Methods("POST")
	r.HandleFunc("/health", s.HealthHandler).Methods("GET")
}

// decodeJSON reads and unmarshals a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	defer func() {
		_ = r.Body.Close()
	}()

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// clientIP extracts the originating IP of a request, honoring
// X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
