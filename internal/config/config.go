package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL         = "https://api.openai.com/v1/chat/completions"
	defaultModel          = "gpt-4o-mini"
	defaultTimeoutSeconds = 30
	defaultMaxUploadBytes = 5 << 20
	defaultMaxPromptChars = 6000
)

// Config holds application configuration. It is read once at startup and
// treated as immutable afterwards.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	OpenAIAPIKey    string
	OpenAIAPIURL    string
	LLMModel        string
	EmbeddingModel  string
	LLMTimeout      time.Duration
	MaxUploadBytes  int64
	MaxPromptChars  int
}

// RemoteEnabled reports whether the remote-AI recommendation path is configured.
func (c Config) RemoteEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIAPIURL:    getEnv("OPENAI_API_URL", defaultAPIURL),
		LLMModel:        getEnv("LLM_MODEL", defaultModel),
		EmbeddingModel:  strings.TrimSpace(os.Getenv("EMBEDDING_MODEL")),
		LLMTimeout:      time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
		MaxPromptChars:  getEnvInt("MAX_PROMPT_CHARS", defaultMaxPromptChars),
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
