package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration derived from environment variables.
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ServiceName  string

	// Generation backend (chat completions)
	OpenAIAPIKey      string
	OpenAIURL         string
	OpenAIModel       string
	OpenAITemperature float64
	OpenAITimeout     time.Duration

	// Personalization scoring backend
	MLServiceURL     string
	MLServiceTimeout time.Duration

	// Optional GeoIP database used for locale suffix derivation
	GeoIPDB string

	// Tracing configuration
	TracingEnabled    bool
	TracingEndpoint   string
	TracingSampleRate float64
}

// Load parses environment variables and returns a Config populated with
// defaults when variables are absent.
func Load() Config {
	cfg := Config{}

	cfg.Port = getenv("PORT", "8100")
	cfg.ReadTimeout = envDuration("READ_TIMEOUT", 5*time.Second)
	cfg.WriteTimeout = envDuration("WRITE_TIMEOUT", 30*time.Second)
	cfg.ServiceName = getenv("SERVICE_NAME", "edumorph-mcp")

	cfg.OpenAIAPIKey = getenv("OPENAI_API_KEY", "")
	cfg.OpenAIURL = getenv("OPENAI_URL", "https://api.openai.com/v1/chat/completions")
	cfg.OpenAIModel = getenv("OPENAI_MODEL", "gpt-4o-mini")
	cfg.OpenAITemperature = envFloat("OPENAI_TEMPERATURE", 0.7)
	cfg.OpenAITimeout = envDuration("OPENAI_TIMEOUT", 15*time.Second)

	cfg.MLServiceURL = getenv("ML_SERVICE_URL", "http://localhost:8000")
	cfg.MLServiceTimeout = envDuration("ML_SERVICE_TIMEOUT", 3*time.Second)

	cfg.GeoIPDB = getenv("GEOIP_DB", "")

	cfg.TracingEnabled = envBool("TRACING_ENABLED", false)
	cfg.TracingEndpoint = getenv("TRACING_ENDPOINT", "tempo:4317")
	cfg.TracingSampleRate = envFloat("TRACING_SAMPLE_RATE", 1.0)

	return cfg
}

// getenv returns the value of the environment variable if set, otherwise def.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration parses an environment variable into a time.Duration. The value
// can be a duration string (e.g. "5s") or a number of seconds. If the
// variable is unset or invalid, def is returned.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

// envBool parses a boolean environment variable. Accepted values are those
// supported by strconv.ParseBool. When unset or invalid, def is returned.
func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}

// envFloat parses a float64 environment variable. When unset or invalid, def
// is returned.
func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}
