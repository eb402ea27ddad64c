// Package bootstrap builds the long-lived dependencies shared by the API
// server and resumectl from a loaded config.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/repositories"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

// OpenRepository returns the record store selected by DB_DRIVER.
func OpenRepository(cfg *config.Config) (repositories.ResumeRepository, error) {
	switch cfg.Database.Driver {
	case "memory":
		log.Warn("⚠️ Using in-memory resume store, records are lost on restart")
		return repositories.NewMemoryResumeRepository(), nil
	case "", "postgres":
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return repositories.NewResumeRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Database.Driver)
	}
}

// NewAnalyzer wires the configured completion client into an analyzer.
func NewAnalyzer(cfg *config.Config) (services.AnalyzerService, error) {
	client, err := services.NewCompletionClient(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion client: %w", err)
	}
	log.Infof("✅ Completion client ready: %s (%s)", client.Source(), cfg.LLM.Model)

	return services.NewAnalyzerService(client, services.NewPromptBuilder(), cfg.LLM.Timeout), nil
}

// OpenIndexer connects to Qdrant and ensures the collection exists. It
// returns nil without error when QDRANT_URL is unset.
func OpenIndexer(ctx context.Context, cfg *config.Config) (services.ResumeIndexer, error) {
	if !cfg.Qdrant.Enabled() {
		return nil, nil
	}
	if cfg.Qdrant.EmbedAPIKey == "" {
		return nil, fmt.Errorf("QDRANT_URL is set but no embedding key (EMBED_API_KEY or GEMINI_API_KEY)")
	}

	index, err := services.NewQdrantIndex(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		return nil, err
	}
	if err := index.InitCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant collection: %w", err)
	}

	embedder, err := services.NewGeminiService(services.GeminiConfig{
		APIKey:     cfg.Qdrant.EmbedAPIKey,
		EmbedModel: cfg.Qdrant.EmbedModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding client: %w", err)
	}

	log.Infof("✅ Resume index ready: collection %s", cfg.Qdrant.Collection)
	return services.NewResumeIndexer(index, embedder), nil
}
