package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

// Call settings per template.
const (
	structuredTemperature = 0.3
	structuredMaxTokens   = 1000
	evaluatorTemperature  = 0.7
	evaluatorMaxTokens    = 600
)

type AnalyzerService interface {
	// Evaluate returns the model's free-text report for a résumé.
	Evaluate(ctx context.Context, resumeText string) (string, error)
	// AnalyzeStructured compares a résumé with job requirements.
	AnalyzeStructured(ctx context.Context, resumeText, requirements string) (*models.StructuredAnalysis, error)
}

type analyzerService struct {
	client  CompletionClient
	prompts *PromptBuilder
	timeout time.Duration
	now     func() time.Time
}

func NewAnalyzerService(client CompletionClient, prompts *PromptBuilder, timeout time.Duration) AnalyzerService {
	return &analyzerService{
		client:  client,
		prompts: prompts,
		timeout: timeout,
		now:     time.Now,
	}
}

// Evaluate implements AnalyzerService.
func (a *analyzerService) Evaluate(ctx context.Context, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", ErrEmptyContent
	}

	prompt := a.prompts.BuildEvaluatorPrompt(resumeText)
	return a.complete(ctx, prompt, evaluatorTemperature, evaluatorMaxTokens)
}

// AnalyzeStructured implements AnalyzerService.
func (a *analyzerService) AnalyzeStructured(ctx context.Context, resumeText, requirements string) (*models.StructuredAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(requirements) == "" {
		return nil, fmt.Errorf("%w: Both resume text and requirements are required", ErrInvalidRequest)
	}

	prompt := a.prompts.BuildStructuredPrompt(resumeText, requirements)
	raw, err := a.complete(ctx, prompt, structuredTemperature, structuredMaxTokens)
	if err != nil {
		return nil, err
	}

	return NormalizeStructured(raw, a.client.Source(), a.now())
}

func (a *analyzerService) complete(ctx context.Context, prompt Prompt, temperature float32, maxTokens int) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.client.Complete(ctx, CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", prompt.TemplateID, err)
	}

	return text, nil
}
