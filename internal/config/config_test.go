package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "STORAGE_BACKEND", "DATABASE_URL", "MONGO_URI",
		"MONGO_DATABASE", "LLM_PROVIDER", "ANTHROPIC_API_KEY", "VITE_ANTHROPIC_API_KEY",
		"ANTHROPIC_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"MAX_TOKENS", "MAX_IMAGE_BYTES", "REPORT_BUCKET", "AWS_REGION", "ENABLE_CORS",
		"CORS_ORIGINS", "ENABLE_METRICS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.AnthropicModel)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, 5*1024*1024, cfg.MaxImageBytes)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/painmap?sslmode=disable")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("MAX_TOKENS", "1024")
	t.Setenv("ENABLE_CORS", "yes")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("VITE_ANTHROPIC_API_KEY", "sk-ant-legacy")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend, "a database url selects postgres")
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "sk-ant-legacy", cfg.AnthropicAPIKey)
}

func TestMissingAPIKeyIsNotAStartupError(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "your_api_key_here")
	_, err := LoadConfig()
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORAGE_BACKEND": "postgres"}},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "redis"}},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "llama"}},
		{"bad port", map[string]string{"PORT": "http"}},
		{"zero max tokens", map[string]string{"MAX_TOKENS": "0"}},
		{"negative image size", map[string]string{"MAX_IMAGE_BYTES": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
