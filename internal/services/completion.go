package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kesavpal/RESUMEWISE/internal/config"
)

// CompletionRequest is one system+user exchange with a text generation model.
// An empty Model selects the client's configured model.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  float32
	MaxTokens    int
}

// CompletionClient wraps an external LLM. Every failure it returns wraps
// ErrCompletionFailed. It never retries.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Source is the label stamped on structured analyses.
	Source() string
}

// EmbeddingClient turns text into a vector for the résumé index.
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// NewCompletionClient builds the client selected by LLM_PROVIDER.
func NewCompletionClient(cfg config.LLMConfig) (CompletionClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return NewGeminiService(GeminiConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
	case "openai":
		return NewOpenAIService(OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
