// Package ai wraps the hosted language model used to write promotions.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("AI provider API key is not configured")

var ErrEmptyCompletion = errors.New("AI provider returned an empty completion")

type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Completer generates text from a prompt.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient never fails; a missing key surfaces as ErrNotConfigured on
// the first Complete call so the rest of the app keeps working.
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	if apiKey == "" {
		return &OpenAIClient{model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Completer = (*OpenAIClient)(nil)
