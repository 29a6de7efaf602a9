package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application.
type Config struct {
	LLMProvider string
	LLMBaseURL  string
	LLMModel    string
	LLMAPIKey   string
	// LLMTimeout bounds one summarization call. Zero means no timeout.
	LLMTimeout time.Duration

	PromptMaxChars         int
	AutoSummarizeThreshold int
	MaxUploadBytes         int64

	DBPath     string
	SessionTTL time.Duration
	APIPort    string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		LLMBaseURL:  getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModel:    getEnv("LLM_MODEL", "gemini-3-pro-preview"),
		LLMAPIKey:   getEnv("LLM_API_KEY", "dummy-key"),
		DBPath:      getEnv("DB_PATH", "./data/cruxpad.db"),
		APIPort:     getEnv("API_PORT", "9000"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI:
	case ProviderGemini:
		// The gemini SDK talks to Google's endpoint unless a base URL is set explicitly.
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
		if os.Getenv("LLM_API_KEY") == "" {
			return nil, fmt.Errorf("LLM_API_KEY is required for the gemini provider")
		}
	default:
		return nil, fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, cfg.LLMProvider)
	}

	if cfg.LLMTimeout, err = durationEnv("LLM_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be greater than 0")
	}

	if cfg.PromptMaxChars, err = intEnv("PROMPT_MAX_CHARS", 300000); err != nil {
		return nil, err
	}
	if cfg.PromptMaxChars <= 0 {
		return nil, fmt.Errorf("PROMPT_MAX_CHARS must be greater than 0")
	}
	if cfg.AutoSummarizeThreshold, err = intEnv("AUTO_SUMMARIZE_THRESHOLD", 50); err != nil {
		return nil, err
	}
	if cfg.AutoSummarizeThreshold < 0 {
		return nil, fmt.Errorf("AUTO_SUMMARIZE_THRESHOLD must not be negative")
	}
	maxUpload, err := intEnv("MAX_UPLOAD_BYTES", 32<<20)
	if err != nil {
		return nil, err
	}
	if maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be greater than 0")
	}
	cfg.MaxUploadBytes = int64(maxUpload)

	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}
