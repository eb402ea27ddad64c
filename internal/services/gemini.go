package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"
)

const geminiSource = "Google Gemini"

// maxEmbeddingBytes keeps embedding input near the 10k token limit.
const maxEmbeddingBytes = 40000

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
	// BaseURL overrides the Gemini API endpoint. Empty uses the default.
	BaseURL string
}

type GeminiService interface {
	CompletionClient
	EmbeddingClient
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(cfg GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	embedModel := cfg.EmbedModel
	if embedModel == "" {
		embedModel = "text-embedding-004"
	}

	return &geminiService{
		client:     client,
		modelName:  model,
		embedModel: embedModel,
	}, nil
}

// Source implements CompletionClient.
func (g *geminiService) Source() string {
	return geminiSource
}

// Complete implements CompletionClient.
func (g *geminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.modelName
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	log.Infof("🤖 gemini request model=%s prompt_chars=%d", model, len(req.SystemPrompt)+len(req.UserPrompt))

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(req.UserPrompt), config)
	if err != nil {
		log.Errorf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("%w: gemini: %v", ErrCompletionFailed, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: gemini returned no response", ErrCompletionFailed)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: gemini response has no text content", ErrCompletionFailed)
	}

	log.Infof("📊 gemini response received chars=%d", len(text))

	return text, nil
}

// GenerateEmbedding implements EmbeddingClient.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	text = truncateUTF8(text, maxEmbeddingBytes)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// truncateUTF8 cuts s to at most maxBytes without splitting a rune.
func truncateUTF8(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
