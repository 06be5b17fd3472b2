package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/models"
)

// generate calls the generator once and turns every failure, including an
// empty answer, into a *models.GenerationError.
func generate(ctx context.Context, generator Generator, task Task, prompt string) (string, error) {
	entry := logger(ctx).WithFields(log.Fields{
		"task":          task,
		"prompt_length": len(prompt),
	})
	entry.Debug("🤖 Generating content")

	start := time.Now()
	text, err := generator.Generate(ctx, task, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("generator returned empty content")
	}
	if err != nil {
		entry.WithError(err).Error("❌ Generation failed")
		return "", &models.GenerationError{Err: err}
	}

	entry.WithFields(log.Fields{
		"response_length": len(text),
		"duration":        time.Since(start).String(),
	}).Info("✅ Content generated")

	return text, nil
}
