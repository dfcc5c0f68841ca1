package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUserID is the local single-user identity.
const DefaultUserID = "00000000-0000-0000-0000-000000000001"

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string
	UserID    string

	// Database
	DatabaseURL    string
	DatabaseDriver string
	SQLitePath     string

	// Groq
	GroqAPIKey        string
	GroqBaseURL       string
	GroqPrimaryModel  string
	GroqFallbackModel string

	// Hugging Face
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	HuggingFaceModels  []string

	// Classifier
	ClassifierHTTPTimeout     time.Duration
	ClassifierTemperature     float64
	ClassifierMaxTokens       int
	ClassifierBreakerFailures int
	ClassifierBreakerTimeout  time.Duration
	// LLMFallback is the fallback flag used when no stored schedule sets one.
	LLMFallback bool

	// Metrics
	MetricsTextfile string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		UserID:    getEnv("SLOTWISE_USER_ID", DefaultUserID),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", getDefaultSQLitePath()),

		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:       getEnv("GROQ_BASE_URL", "https://api.groq.com"),
		GroqPrimaryModel:  getEnv("GROQ_PRIMARY_MODEL", "llama-3.3-70b-versatile"),
		GroqFallbackModel: getEnv("GROQ_FALLBACK_MODEL", "mixtral-8x7b-32768"),

		HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
		HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co"),
		HuggingFaceModels:  getListEnv("HUGGINGFACE_MODELS"),

		ClassifierHTTPTimeout:     getDurationEnv("CLASSIFIER_HTTP_TIMEOUT", 30*time.Second),
		ClassifierTemperature:     getFloatEnv("CLASSIFIER_TEMPERATURE", 0.7),
		ClassifierMaxTokens:       getIntEnv("CLASSIFIER_MAX_TOKENS", 1024),
		ClassifierBreakerFailures: getIntEnv("CLASSIFIER_BREAKER_FAILURES", 3),
		ClassifierBreakerTimeout:  getDurationEnv("CLASSIFIER_BREAKER_TIMEOUT", 30*time.Second),
		LLMFallback:               getBoolEnv("LLM_FALLBACK", true),

		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
	}

	cfg.DatabaseDriver = "sqlite"
	if isPostgresURL(cfg.DatabaseURL) {
		cfg.DatabaseDriver = "postgres"
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LocalMode reports whether schedules are kept in the local SQLite file.
func (c *Config) LocalMode() bool {
	return c.DatabaseDriver == "sqlite"
}

// ClassifierEnabled reports whether any LLM provider has credentials.
func (c *Config) ClassifierEnabled() bool {
	return c.GroqAPIKey != "" || c.HuggingFaceAPIKey != ""
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value, dropping empty entries.
func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getDefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".slotwise", "data.db")
	}
	return filepath.Join(home, ".slotwise", "data.db")
}
