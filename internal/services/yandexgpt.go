package services

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"

	"alfredoptarigan/spec-scribe/internal/config"
)

const yandexGPTSystemPrompt = "You are an experienced recruiter who writes precise, professional hiring material."

type YandexGPTGenerator struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewYandexGPTGenerator(cfg config.YandexGPTConfig) *YandexGPTGenerator {
	return &YandexGPTGenerator{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(cfg.IAMToken),
		catalogID: cfg.CatalogID,
	}
}

func (y *YandexGPTGenerator) Generate(ctx context.Context, _ Task, prompt string) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(y.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: generationTemperature,
			MaxTokens:   generationMaxTokens,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: yandexGPTSystemPrompt,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: prompt,
			},
		},
	}

	response, err := y.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "yandexgpt request failed")
	}

	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("yandexgpt returned no alternatives")
	}

	return response.Result.Alternatives[0].Message.Text, nil
}
