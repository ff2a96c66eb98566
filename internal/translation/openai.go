package translation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider completes prompts with the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider for the public OpenAI endpoint.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIProviderWithConfig creates a provider from a client config, for
// compatible endpoints and tests.
func NewOpenAIProviderWithConfig(cfg openai.ClientConfig, model string) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

// Complete implements Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   60,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoTranslation
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ListChatModels returns the sorted ids of the chat models the key can use.
func (p *OpenAIProvider) ListChatModels(ctx context.Context) ([]string, error) {
	models, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		id := model.ID
		// Speech, audio and image models cannot translate
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "dall-e") || strings.Contains(id, "image") {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") {
			chatModels = append(chatModels, id)
		}
	}

	sort.Strings(chatModels)
	return chatModels, nil
}
