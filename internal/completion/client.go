// Package completion generates answers through an OpenAI-compatible chat API.
package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tutorkit/askdocs/internal/config"
)

// Client wraps the chat-completions API of the Groq OpenAI-compatible
// endpoint using the llama-3.3-70b-versatile model.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a completion client authenticated with the given key.
// Extra request options are appended after the defaults, so tests can
// override the base URL.
func NewClient(apiKey string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("completion API key is required")
	}

	requestOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(config.CompletionBaseURL),
	}, opts...)

	client := openai.NewClient(requestOpts...)

	return &Client{
		client: &client,
		model:  config.CompletionModel,
	}, nil
}

// Complete submits a system+user message pair and returns the first
// choice's message content, or "" if the response carries no choices.
// When the provider reports a structured API error, its message is
// returned verbatim so callers can forward it.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", fmt.Errorf("%s", apiErr.Message)
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
