package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/config"
	"alfredoptarigan/spec-scribe/internal/server"
	"alfredoptarigan/spec-scribe/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	config.InitLogging(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Info("✅ Config loaded successfully")

	ctx := context.Background()

	generator, err := services.NewGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s generator: %v", cfg.Generator.Provider, err)
	}
	log.WithField("provider", cfg.Generator.Provider).Info("✅ Generator initialized")

	app := server.New(cfg, server.Dependencies{
		Generator: generator,
		Retriever: newReferenceRetriever(ctx, cfg),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newReferenceRetriever falls back to no reference material whenever the
// vector store cannot be reached, so the API still starts.
func newReferenceRetriever(ctx context.Context, cfg *config.Config) services.ReferenceRetriever {
	if !cfg.TemplateRetrievalEnabled() {
		log.Info("ℹ️  Template retrieval disabled")
		return services.NewNopReferenceRetriever()
	}

	embedder, err := services.NewGeminiService(ctx, cfg.Gemini)
	if err != nil {
		log.Warnf("⚠️  Failed to initialize Gemini embeddings, template retrieval disabled: %v", err)
		return services.NewNopReferenceRetriever()
	}

	store, err := services.NewQdrantTemplateStore(cfg.Qdrant)
	if err != nil {
		log.Warnf("⚠️  Failed to initialize Qdrant, template retrieval disabled: %v", err)
		return services.NewNopReferenceRetriever()
	}

	if err := store.InitCollection(ctx); err != nil {
		log.Warnf("⚠️  Failed to initialize Qdrant collection, template retrieval disabled: %v", err)
		return services.NewNopReferenceRetriever()
	}

	log.WithField("collection", cfg.Qdrant.Collection).Info("✅ Template retrieval enabled")
	return services.NewVectorReferenceRetriever(embedder, store)
}
