// Package config reads the service configuration from the environment, with
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// Config holds all application configuration
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// Storage
	StorageBackend string
	DatabaseURL    string
	MongoURI       string
	MongoDatabase  string

	// Diagnosis provider. Missing keys are reported when a diagnosis is
	// requested, not at startup.
	LLMProvider     string
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string
	GeminiAPIKey    string
	GeminiModel     string
	MaxTokens       int

	MaxImageBytes int

	// Report archiving is enabled when ReportBucket is set.
	ReportBucket string
	AWSRegion    string

	// Feature flags
	EnableCORS    bool
	CORSOrigins   []string
	EnableMetrics bool
}

// LoadConfig loads .env when present, then reads the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	databaseURL := getEnv("DATABASE_URL", "")
	defaultBackend := StorageMemory
	if databaseURL != "" {
		defaultBackend = StoragePostgres
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", defaultBackend)),
		DatabaseURL:    databaseURL,
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "painmap"),

		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderAnthropic)),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", getEnv("VITE_ANTHROPIC_API_KEY", "")),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxTokens:       getEnvInt("MAX_TOKENS", 4096),

		MaxImageBytes: getEnvInt("MAX_IMAGE_BYTES", 5*1024*1024),

		ReportBucket: getEnv("REPORT_BUCKET", ""),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),

		EnableCORS:    getEnvBool("ENABLE_CORS", false),
		CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	switch c.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the postgres storage backend")
		}
	case StorageMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI must be set for the mongo storage backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	switch c.LLMProvider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("MAX_TOKENS must be positive")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
