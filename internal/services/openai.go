package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/tidwall/gjson"
)

const openAISource = "OpenAI GPT"

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// openAIService talks to any OpenAI compatible chat completions endpoint
// (OpenAI, OpenRouter).
type openAIService struct {
	client *resty.Client
	model  string
}

func NewOpenAIService(cfg OpenAIConfig) CompletionClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4-turbo"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &openAIService{
		client: client,
		model:  model,
	}
}

// Source implements CompletionClient.
func (o *openAIService) Source() string {
	return openAISource
}

// Complete implements CompletionClient.
func (o *openAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	log.Infof("🤖 openai request model=%s prompt_chars=%d", model, len(req.SystemPrompt)+len(req.UserPrompt))

	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{
			Model:       model,
			Messages:    messages,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}).
		Post("/chat/completions")
	if err != nil {
		log.Errorf("❌ OpenAI API error: %v", err)
		return "", fmt.Errorf("%w: openai: %v", ErrCompletionFailed, err)
	}

	body := resp.String()
	if resp.IsError() {
		message := gjson.Get(body, "error.message").String()
		if message == "" {
			message = resp.Status()
		}
		return "", fmt.Errorf("%w: openai status %d: %s", ErrCompletionFailed, resp.StatusCode(), message)
	}

	text := strings.TrimSpace(gjson.Get(body, "choices.0.message.content").String())
	if text == "" {
		return "", fmt.Errorf("%w: openai response has no message content", ErrCompletionFailed)
	}

	log.Infof("📊 openai response received chars=%d", len(text))

	return text, nil
}
