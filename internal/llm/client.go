// Package llm is a minimal chat-completions client for the generation
// backend. Unlike the personalization client it does not swallow transport
// errors; the caller decides how an outage and an empty completion are
// logged, though both resolve to the same user-visible fallback.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/observability"
)

// systemPrompt fixes the assistant's role for every adaptation request.
const systemPrompt = "You adapt educational content with cultural sensitivity and accuracy."

// Client is a chat-completions client. A client without an API key is valid
// and short-circuits every call to an empty completion without touching the
// network.
type Client struct {
	apiKey      string
	url         string
	model       string
	temperature float64
	httpClient  *http.Client
	logger      *zap.Logger
	metrics     observability.MetricsRegistry
}

// NewClient creates a generation client with a bounded per-call timeout.
func NewClient(apiKey, url, model string, temperature float64, timeout time.Duration, logger *zap.Logger, metrics observability.MetricsRegistry) *Client {
	return &Client{
		apiKey:      apiKey,
		url:         url,
		model:       model,
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Configured reports whether an API credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt to the generation backend and returns the first
// completion choice, trimmed. Without a credential it returns "" immediately.
// An empty or missing completion also yields "", which callers must treat as
// "generation unavailable". Transport and status failures are returned to the
// caller.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		c.metrics.IncrementGenerationRequests("unkeyed")
		return "", nil
	}

	start := time.Now()
	outcome := "success"
	defer func() {
		c.metrics.RecordGenerationLatency(time.Since(start))
		c.metrics.IncrementGenerationRequests(outcome)
	}()

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		outcome = "error"
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		outcome = "error"
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "error"
		return "", fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = "error"
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "error"
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, truncate(string(body), 400))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		outcome = "error"
		return "", fmt.Errorf("parse response: %s", truncate(string(body), 400))
	}

	if len(parsed.Choices) == 0 {
		outcome = "empty"
		return "", nil
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		outcome = "empty"
	}
	return content, nil
}

// SetURL sets the backend URL (for testing).
func (c *Client) SetURL(url string) {
	c.url = url
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
