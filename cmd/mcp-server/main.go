// The mcp-server command exposes the adaptation pipeline over the Model
// Context Protocol via stdio, so agent frontends can call the same
// operations the HTTP API serves.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/adapter"
	"github.com/edumorph/mcp-service/internal/api"
	"github.com/edumorph/mcp-service/internal/config"
	"github.com/edumorph/mcp-service/internal/enrich"
	"github.com/edumorph/mcp-service/internal/llm"
	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/observability"
	"github.com/edumorph/mcp-service/internal/personalization"
	"github.com/edumorph/mcp-service/internal/translation"
)

// AdaptInput mirrors the /adapt request body.
type AdaptInput struct {
	LessonContent string          `json:"lesson_content"`
	Context       *models.Context `json:"context,omitempty"`
}

// TranslateInput mirrors the /translate request body.
type TranslateInput struct {
	Text           string          `json:"text"`
	TargetLanguage string          `json:"target_language"`
	SourceLanguage string          `json:"source_language,omitempty"`
	Context        *models.Context `json:"context,omitempty"`
}

type mcpService struct {
	deps   *api.Server
	logger *zap.Logger
}

func (s *mcpService) adaptRequest(in AdaptInput) models.AdaptRequest {
	req := models.AdaptRequest{
		LessonContent: in.LessonContent,
		Context:       models.DefaultContext(),
	}
	if in.Context != nil {
		req.Context = *in.Context
		req.Context.ApplyDefaults()
	}
	return req
}

// AdaptLesson adapts lesson content through the generative pipeline.
func (s *mcpService) AdaptLesson(ctx context.Context, req *mcp.CallToolRequest, input AdaptInput) (*mcp.CallToolResult, models.AdaptResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp := s.deps.AdaptLesson(ctx, s.adaptRequest(input), "", s.logger)
	return nil, resp, nil
}

// CulturalAdapt adapts lesson content through the template path.
func (s *mcpService) CulturalAdapt(ctx context.Context, req *mcp.CallToolRequest, input AdaptInput) (*mcp.CallToolResult, models.AdaptResponse, error) {
	resp := s.deps.Adapter.Adapt(s.adaptRequest(input))
	return nil, resp, nil
}

// TranslateText translates educational content with context awareness.
func (s *mcpService) TranslateText(ctx context.Context, req *mcp.CallToolRequest, input TranslateInput) (*mcp.CallToolResult, models.TranslateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp := s.deps.Translator.Translate(ctx, models.TranslateRequest{
		Text:               input.Text,
		TargetLanguage:     input.TargetLanguage,
		SourceLanguage:     input.SourceLanguage,
		Context:            input.Context,
		PreserveFormatting: true,
	})
	return nil, resp, nil
}

func contextSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Learner context: user {grade, preferred_language, region, ...}, device {user_agent, is_mobile}, content {subject, difficulty, adaptation_level}",
	}
}

func main() {
	cfg := config.Load()

	logger, err := observability.InitLoggerWithService(cfg.ServiceName + "-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	metrics := observability.NewNoOpRegistry()

	enricher := enrich.New(logger, nil)
	scorer := personalization.NewClient(cfg.MLServiceURL, cfg.MLServiceTimeout, logger, metrics)
	generator := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIURL, cfg.OpenAIModel, cfg.OpenAITemperature, cfg.OpenAITimeout, logger, metrics)
	templateAdapter := adapter.New(logger, metrics, rand.NewSource(time.Now().UnixNano()))
	translator := translation.New(generator, logger, metrics)

	svc := &mcpService{
		deps:   api.NewServer(logger, enricher, scorer, generator, templateAdapter, translator, metrics, cfg),
		logger: logger,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "edumorph",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "adapt_lesson",
		Description: "Adapt educational lesson content to a learner's language, region, grade and device",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"lesson_content": map[string]interface{}{
					"type":        "string",
					"description": "Raw lesson text to adapt",
				},
				"context": contextSchema(),
			},
			"required": []string{"lesson_content"},
		},
	}, svc.AdaptLesson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cultural_adapt",
		Description: "Adapt lesson content using region-specific templates without calling the LLM backend",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"lesson_content": map[string]interface{}{
					"type":        "string",
					"description": "Raw lesson text to adapt",
				},
				"context": contextSchema(),
			},
			"required": []string{"lesson_content"},
		},
	}, svc.CulturalAdapt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate_text",
		Description: "Translate educational content while preserving formatting, terminology and cultural references",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to translate",
				},
				"target_language": map[string]interface{}{
					"type":        "string",
					"description": "Target language code (e.g. hi, pa, ta)",
				},
				"source_language": map[string]interface{}{
					"type":        "string",
					"description": "Source language code (defaults to en)",
				},
				"context": contextSchema(),
			},
			"required": []string{"text", "target_language"},
		},
	}, svc.TranslateText)

	logger.Info("MCP server running via stdio")

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
