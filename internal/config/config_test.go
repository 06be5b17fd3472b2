package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GENERATOR_PROVIDER", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("QDRANT_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ProviderStub, cfg.Generator.Provider)
	assert.Equal(t, int64(5242880), cfg.Upload.MaxFileSize)
	assert.Equal(t, "2023-05-15", cfg.AzureOpenAI.APIVersion)
	assert.False(t, cfg.Qdrant.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GENERATOR_PROVIDER", "Azure-OpenAI")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com/")
	t.Setenv("AZURE_OPENAI_API_KEY", "key")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("QDRANT_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderAzureOpenAI, cfg.Generator.Provider)
	assert.Equal(t, "https://example.openai.azure.com", cfg.AzureOpenAI.Endpoint)
	assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
	assert.True(t, cfg.Qdrant.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"stub needs nothing", func(c *Config) {}, false},
		{"unknown provider", func(c *Config) { c.Generator.Provider = "gpt-9" }, true},
		{"gemini without key", func(c *Config) { c.Generator.Provider = ProviderGemini }, true},
		{"gemini with key", func(c *Config) {
			c.Generator.Provider = ProviderGemini
			c.Gemini.APIKey = "k"
		}, false},
		{"azure without deployment", func(c *Config) {
			c.Generator.Provider = ProviderAzureOpenAI
			c.AzureOpenAI.Endpoint = "https://x"
			c.AzureOpenAI.APIKey = "k"
		}, true},
		{"yandexgpt without catalog", func(c *Config) {
			c.Generator.Provider = ProviderYandexGPT
			c.YandexGPT.IAMToken = "t"
		}, true},
		{"non-positive file size", func(c *Config) { c.Upload.MaxFileSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Generator: GeneratorConfig{Provider: ProviderStub},
				Upload:    UploadConfig{MaxFileSize: 10},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTemplateRetrievalEnabled(t *testing.T) {
	cfg := &Config{Qdrant: QdrantConfig{Enabled: true}}
	assert.False(t, cfg.TemplateRetrievalEnabled())

	cfg.Gemini.APIKey = "k"
	assert.True(t, cfg.TemplateRetrievalEnabled())
}
