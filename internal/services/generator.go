package services

import (
	"context"

	"github.com/pkg/errors"

	"alfredoptarigan/spec-scribe/internal/config"
)

// Task tells a Generator what shape of output the caller expects.
type Task string

const (
	TaskJobSpecification   Task = "job_specification"
	TaskInterviewQuestions Task = "interview_questions"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 1000
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, task Task, prompt string) (string, error)
}

// NewGenerator builds the generator selected by cfg.Generator.Provider.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.Generator.Provider {
	case config.ProviderStub:
		return NewStubGenerator(), nil
	case config.ProviderGemini:
		gemini, err := NewGeminiService(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case config.ProviderAzureOpenAI:
		azure, err := NewAzureOpenAIGenerator(cfg.AzureOpenAI)
		if err != nil {
			return nil, err
		}
		return azure, nil
	case config.ProviderYandexGPT:
		return NewYandexGPTGenerator(cfg.YandexGPT), nil
	default:
		return nil, errors.Errorf("unknown generator provider %q", cfg.Generator.Provider)
	}
}
