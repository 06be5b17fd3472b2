package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"alfredoptarigan/spec-scribe/internal/config"
)

// AzureOpenAIGenerator calls a chat completions deployment on Azure OpenAI.
type AzureOpenAIGenerator struct {
	llm        llms.Model
	deployment string
}

func NewAzureOpenAIGenerator(cfg config.AzureOpenAIConfig) (*AzureOpenAIGenerator, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" || cfg.DeploymentName == "" {
		return nil, errors.New("azure openai endpoint, api key and deployment name are required")
	}

	llm, err := openai.New(
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithBaseURL(cfg.Endpoint),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.DeploymentName),
		openai.WithAPIVersion(cfg.APIVersion),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create azure openai client")
	}

	return &AzureOpenAIGenerator{
		llm:        llm,
		deployment: cfg.DeploymentName,
	}, nil
}

func (a *AzureOpenAIGenerator) Generate(ctx context.Context, _ Task, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithTemperature(generationTemperature),
		llms.WithMaxTokens(generationMaxTokens),
	)
	if err != nil {
		return "", errors.Wrapf(err, "azure openai deployment %s", a.deployment)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("azure openai returned an empty completion")
	}

	return text, nil
}
