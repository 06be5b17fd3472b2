package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/config"
	"alfredoptarigan/spec-scribe/internal/services"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

var referenceExtensions = []string{".pdf", ".docx", ".md", ".txt"}

func main() {
	dir := flag.String("dir", "./reference_templates", "directory holding <template-id>.{pdf,docx,md,txt} files")
	flag.Parse()

	log.Info("🚀 Starting template ingestion...")

	cfg := config.Load()
	config.InitLogging(cfg)

	ctx := context.Background()

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	store, err := services.NewQdrantTemplateStore(cfg.Qdrant)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := store.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	extractors := services.NewExtractorRegistry()
	chunker := services.NewTextChunker()

	successCount := 0
	failCount := 0

	for _, template := range services.NewTemplateCatalog().List() {
		logger := log.WithField("template", template.ID)
		logger.Infof("📄 Processing: %s", template.Name)

		path, ok := findReferenceFile(*dir, template.ID)
		if !ok {
			logger.Warn("⚠️  No reference file found, skipping...")
			failCount++
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf("❌ Failed to read %s: %v", path, err)
			failCount++
			continue
		}

		text, err := extractors.Extract(filepath.Base(path), data)
		if err != nil {
			logger.Errorf("❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		if err := store.DeleteTemplate(ctx, template.ID); err != nil {
			logger.Errorf("❌ Failed to remove previous chunks: %v", err)
			failCount++
			continue
		}

		chunks := chunker.ChunkText(text, chunkSize, chunkOverlap)
		logger.Infof("✂️  Created %d chunks from %d characters", len(chunks), len(text))

		stored := 0
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				logger.Errorf("❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			chunkID := fmt.Sprintf("%s_chunk_%d", template.ID, i)
			if err := store.UpsertChunk(ctx, chunkID, template.ID, chunk, embedding); err != nil {
				logger.Errorf("❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}
			stored++

			if stored%5 == 0 || i == len(chunks)-1 {
				logger.Infof("📊 Progress: %d/%d chunks stored", stored, len(chunks))
			}
		}

		if stored != len(chunks) {
			logger.Errorf("❌ Stored %d of %d chunks", stored, len(chunks))
			failCount++
			continue
		}

		logger.Info("✅ Successfully ingested")
		successCount++
	}

	log.Info(strings.Repeat("=", 60))
	log.Info("📊 Ingestion Summary:")
	log.Infof("   ✅ Successful: %d templates", successCount)
	log.Infof("   ❌ Failed: %d templates", failCount)
	log.Info(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Warn("⚠️  Some templates failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Info("✅ All templates ingested successfully!")
}

func findReferenceFile(dir, templateID string) (string, bool) {
	for _, ext := range referenceExtensions {
		path := filepath.Join(dir, templateID+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
