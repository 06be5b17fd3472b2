package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/spec-scribe/internal/config"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("stub", func(t *testing.T) {
		generator, err := NewGenerator(ctx, &config.Config{
			Generator: config.GeneratorConfig{Provider: config.ProviderStub},
		})
		require.NoError(t, err)
		assert.IsType(t, &StubGenerator{}, generator)
	})

	t.Run("yandexgpt", func(t *testing.T) {
		generator, err := NewGenerator(ctx, &config.Config{
			Generator: config.GeneratorConfig{Provider: config.ProviderYandexGPT},
			YandexGPT: config.YandexGPTConfig{IAMToken: "token", CatalogID: "catalog"},
		})
		require.NoError(t, err)
		assert.IsType(t, &YandexGPTGenerator{}, generator)
	})

	t.Run("azure openai without credentials", func(t *testing.T) {
		generator, err := NewGenerator(ctx, &config.Config{
			Generator: config.GeneratorConfig{Provider: config.ProviderAzureOpenAI},
		})
		assert.Error(t, err)
		assert.Nil(t, generator)
	})

	t.Run("unknown provider", func(t *testing.T) {
		generator, err := NewGenerator(ctx, &config.Config{
			Generator: config.GeneratorConfig{Provider: "watson"},
		})
		assert.EqualError(t, err, `unknown generator provider "watson"`)
		assert.Nil(t, generator)
	})
}
