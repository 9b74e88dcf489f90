package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/frazabot/fraza/pkg/config"
)

// OpenAI translates via a chat completion call
type OpenAI struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewOpenAI creates an OpenAI-backed translator
func NewOpenAI(cfg config.OpenAIConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

// Translate asks the model for a translation, source language auto-detected
func (t *OpenAI) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       t.cfg.Model,
		Temperature: float32(t.cfg.Temperature),
		MaxTokens:   t.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text to the language with code %q. "+
					"Respond with only the translation, nothing else.\n\n%s", targetCode, text),
			},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("empty translation returned")
	}
	return translated, nil
}

// Name returns the backend name
func (t *OpenAI) Name() string { return "openai" }
