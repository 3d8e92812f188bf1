package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/edumorph/mcp-service/internal/observability"
)

func newTestClient(t *testing.T, apiKey, url string, metrics observability.MetricsRegistry) *Client {
	t.Helper()
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	return NewClient(apiKey, url, "gpt-4o-mini", 0.7, 2*time.Second, zaptest.NewLogger(t), metrics)
}

func TestCompleteUnkeyedSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	mock := observability.NewMockMetricsRegistry()
	c := newTestClient(t, "", srv.URL, mock)
	assert.False(t, c.Configured())

	got, err := c.Complete(context.Background(), "adapt this")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, called)
	assert.Equal(t, 1, mock.GenerationOutcomes["unkeyed"])
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "adapt this", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  adapted lesson \n"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, "test-key", srv.URL, nil)
	got, err := c.Complete(context.Background(), "adapt this")
	require.NoError(t, err)
	assert.Equal(t, "adapted lesson", got)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	mock := observability.NewMockMetricsRegistry()
	c := newTestClient(t, "test-key", srv.URL, mock)

	got, err := c.Complete(context.Background(), "adapt this")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, mock.GenerationOutcomes["empty"])
}

func TestCompleteNon200PropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	mock := observability.NewMockMetricsRegistry()
	c := newTestClient(t, "test-key", srv.URL, mock)

	_, err := c.Complete(context.Background(), "adapt this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 429")
	assert.Equal(t, 1, mock.GenerationOutcomes["error"])
}

func TestCompleteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(t, "test-key", "http://127.0.0.1:1", nil)
	c.SetURL(srv.URL)
	_, err := c.Complete(context.Background(), "adapt this")
	assert.Error(t, err)
}
