package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// TextGenerator is the single capability the assistant needs from a language
// model: turn a system role plus an instruction into prose.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// OpenAITextGenerator talks to the OpenAI chat-completion API or to any
// OpenAI-compatible endpoint (a self-hosted gateway) via a custom base URL.
type OpenAITextGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAITextGenerator(apiKey, baseURL, model string) *OpenAITextGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *OpenAITextGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
