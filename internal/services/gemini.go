package services

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"alfredoptarigan/spec-scribe/internal/config"
)

// maxEmbeddingInput, in runes, keeps embedding requests under the model's token limit.
const maxEmbeddingInput = 40000

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type GeminiService interface {
	Generator
	Embedder
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	return &geminiService{
		client:     client,
		modelName:  cfg.Model,
		embedModel: cfg.EmbedModel,
	}, nil
}

// GenerateEmbedding implements Embedder.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	text = truncateRunes(text, maxEmbeddingInput)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate embedding")
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, errors.New("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Generate implements Generator.
func (g *geminiService) Generate(ctx context.Context, task Task, prompt string) (string, error) {
	temperature := float32(generationTemperature)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: generationMaxTokens,
	}
	if task == TaskInterviewQuestions {
		genConfig.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", errors.Wrap(err, "gemini request failed")
	}

	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		log.WithFields(log.Fields{
			"model":      g.modelName,
			"task":       task,
			"candidates": len(resp.Candidates),
		}).Warn("⚠️ Gemini returned no text content")
		return "", errors.New("no text content in response")
	}

	return text, nil
}
