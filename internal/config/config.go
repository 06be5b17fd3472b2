package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ProviderStub        = "stub"
	ProviderGemini      = "gemini"
	ProviderAzureOpenAI = "azure-openai"
	ProviderYandexGPT   = "yandexgpt"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	CORS        CORSConfig
	Upload      UploadConfig
	Generator   GeneratorConfig
	Gemini      GeminiConfig
	AzureOpenAI AzureOpenAIConfig
	YandexGPT   YandexGPTConfig
	Qdrant      QdrantConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowOrigins string
}

type UploadConfig struct {
	MaxFileSize int64
}

type GeneratorConfig struct {
	Provider string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type AzureOpenAIConfig struct {
	Endpoint       string
	APIKey         string
	DeploymentName string
	APIVersion     string
}

type YandexGPTConfig struct {
	IAMToken  string
	CatalogID string
}

type QdrantConfig struct {
	Enabled    bool
	URL        string
	APIKey     string
	Collection string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5242880),
		},
		Generator: GeneratorConfig{
			Provider: strings.ToLower(getEnv("GENERATOR_PROVIDER", ProviderStub)),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		AzureOpenAI: AzureOpenAIConfig{
			Endpoint:       strings.TrimRight(getEnv("AZURE_OPENAI_ENDPOINT", ""), "/"),
			APIKey:         getEnv("AZURE_OPENAI_API_KEY", ""),
			DeploymentName: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", ""),
			APIVersion:     getEnv("AZURE_OPENAI_API_VERSION", "2023-05-15"),
		},
		YandexGPT: YandexGPTConfig{
			IAMToken:  getEnv("YANDEXGPT_IAM_TOKEN", ""),
			CatalogID: getEnv("YANDEXGPT_CATALOG_ID", ""),
		},
		Qdrant: QdrantConfig{
			Enabled:    getEnvAsBool("QDRANT_ENABLED", false),
			URL:        getEnv("QDRANT_URL", "http://localhost:6334"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "job_spec_templates"),
		},
	}
}

// Validate reports configuration that would only fail on the first request.
func (c *Config) Validate() error {
	switch c.Generator.Provider {
	case ProviderStub:
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderAzureOpenAI:
		if c.AzureOpenAI.Endpoint == "" || c.AzureOpenAI.APIKey == "" || c.AzureOpenAI.DeploymentName == "" {
			return errors.New("AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY and AZURE_OPENAI_DEPLOYMENT_NAME are required for the azure-openai provider")
		}
	case ProviderYandexGPT:
		if c.YandexGPT.IAMToken == "" || c.YandexGPT.CatalogID == "" {
			return errors.New("YANDEXGPT_IAM_TOKEN and YANDEXGPT_CATALOG_ID are required for the yandexgpt provider")
		}
	default:
		return errors.Errorf("unknown generator provider %q", c.Generator.Provider)
	}

	if c.Upload.MaxFileSize <= 0 {
		return errors.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Upload.MaxFileSize)
	}

	return nil
}

// TemplateRetrievalEnabled reports whether reference templates can be
// fetched from Qdrant. Query embeddings come from Gemini.
func (c *Config) TemplateRetrievalEnabled() bool {
	return c.Qdrant.Enabled && c.Gemini.APIKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
