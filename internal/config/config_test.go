package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8100", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "edumorph-mcp", cfg.ServiceName)

	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 0.7, cfg.OpenAITemperature)
	assert.Equal(t, 15*time.Second, cfg.OpenAITimeout)

	assert.Equal(t, "http://localhost:8000", cfg.MLServiceURL)
	assert.Equal(t, 3*time.Second, cfg.MLServiceTimeout)

	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "tempo:4317", cfg.TracingEndpoint)
	assert.Equal(t, 1.0, cfg.TracingSampleRate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("ML_SERVICE_URL", "http://scoring:8000")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, 0.2, cfg.OpenAITemperature)
	assert.Equal(t, "http://scoring:8000", cfg.MLServiceURL)
	assert.True(t, cfg.TracingEnabled)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("DUR_STRING", "5s")
	t.Setenv("DUR_SECONDS", "45")
	t.Setenv("DUR_BAD", "soon")

	assert.Equal(t, 5*time.Second, envDuration("DUR_STRING", time.Minute))
	assert.Equal(t, 45*time.Second, envDuration("DUR_SECONDS", time.Minute))
	assert.Equal(t, time.Minute, envDuration("DUR_BAD", time.Minute))
	assert.Equal(t, time.Minute, envDuration("DUR_UNSET", time.Minute))
}

func TestEnvBool(t *testing.T) {
	t.Setenv("BOOL_TRUE", "1")
	t.Setenv("BOOL_BAD", "yep")

	assert.True(t, envBool("BOOL_TRUE", false))
	assert.False(t, envBool("BOOL_BAD", false))
	assert.True(t, envBool("BOOL_UNSET", true))
}

func TestEnvFloat(t *testing.T) {
	t.Setenv("FLOAT_OK", "0.25")
	t.Setenv("FLOAT_BAD", "many")

	assert.Equal(t, 0.25, envFloat("FLOAT_OK", 1.0))
	assert.Equal(t, 1.0, envFloat("FLOAT_BAD", 1.0))
}
