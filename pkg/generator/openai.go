package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/frazabot/fraza/pkg/config"
)

// OpenAI generates sentences via a chat completion call
type OpenAI struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

const generatorSystemPrompt = `You produce exactly one short declarative sentence for language learners.
The sentence must be simple everyday vocabulary, 8-12 words, no quotes, no numbering,
no commentary - just the sentence itself in the requested language.`

// NewOpenAI creates an OpenAI-backed sentence generator
func NewOpenAI(cfg config.OpenAIConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

// Generate asks the model for a single sentence in the given language
func (g *OpenAI) Generate(ctx context.Context, languageName string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: float32(g.cfg.Temperature),
		MaxTokens:   g.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generatorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Write one sentence in %s.", languageName)},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no sentence returned")
	}

	sentence := strings.TrimSpace(resp.Choices[0].Message.Content)
	// models sometimes wrap the sentence in quotes
	sentence = strings.Trim(sentence, `"`)
	if sentence == "" {
		return "", fmt.Errorf("empty sentence returned")
	}
	return sentence, nil
}

// Name returns the backend name
func (g *OpenAI) Name() string { return "openai" }
