// Package personalization calls the external engagement-scoring service. The
// backend is an opaque model server; this client treats it purely as a
// scoring oracle with a fixed fallback when it is unreachable.
package personalization

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/observability"
)

// Fallback values reported when the scoring service cannot be reached.
const (
	FallbackScore = 0.5
	FallbackLabel = "neutral"
)

// Client provides access to the scoring service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    observability.MetricsRegistry
}

// scoreRequest is the wire format of POST {base}/infer.
type scoreRequest struct {
	Grade      int    `json:"grade"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
}

// scoreResponse is the wire format returned by the scoring service.
type scoreResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Result is the outcome of a scoring call. Degraded distinguishes a real
// score from the silent fallback so callers and telemetry keep the
// distinction the wire format loses.
type Result struct {
	Score    float64
	Label    string
	Degraded bool
	Reason   string
}

// NewClient creates a scoring client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics observability.MetricsRegistry) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Score retrieves an engagement prediction for the given learner attributes.
// It never returns an error: any network failure, timeout or non-200 response
// degrades to the neutral fallback result.
func (c *Client) Score(ctx context.Context, grade int, subject, difficulty string) Result {
	res, err := c.callScoringService(ctx, grade, subject, difficulty)
	if err != nil {
		c.logger.Warn("scoring service unavailable, using neutral fallback",
			zap.Error(err),
			zap.Int("grade", grade),
			zap.String("subject", subject))
		c.metrics.IncrementFallbacks("personalization")
		return Result{
			Score:    FallbackScore,
			Label:    FallbackLabel,
			Degraded: true,
			Reason:   err.Error(),
		}
	}
	c.metrics.RecordPersonalizationScore(res.Score)
	return Result{Score: res.Score, Label: res.Label}
}

// callScoringService makes the actual HTTP call to the scoring service.
func (c *Client) callScoringService(ctx context.Context, grade int, subject, difficulty string) (*scoreResponse, error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		c.metrics.RecordPersonalizationLatency(time.Since(start))
		c.metrics.IncrementPersonalizationRequests(outcome)
	}()

	reqBody, err := json.Marshal(scoreRequest{Grade: grade, Subject: subject, Difficulty: difficulty})
	if err != nil {
		outcome = "degraded"
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/infer", bytes.NewReader(reqBody))
	if err != nil {
		outcome = "degraded"
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = "degraded"
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		outcome = "degraded"
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	// Missing keys decode to the zero value; the label falls back to neutral
	// so a sparse body still yields a usable result.
	var score scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		outcome = "degraded"
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if score.Label == "" {
		score.Label = FallbackLabel
	}

	return &score, nil
}

// HealthCheck checks if the scoring service is available.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}

	return nil
}

// SetBaseURL sets the base URL for the scoring service (for testing).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
