// Package openai implements the insight content generator on the OpenAI
// chat-completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel = "gpt-4o-mini"

	requestTimeout = 60 * time.Second
)

type Client struct {
	client *goopenai.Client
	model  string
}

// New creates an OpenAI-backed generator with a bounded per-request HTTP
// timeout.
func New(apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	config := goopenai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: requestTimeout}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: goopenai.NewClientWithConfig(config), model: model}, nil
}

// GenerateContent sends the prompt as a single user message with the JSON
// response format enabled and returns the first choice. One attempt, no
// retries.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) Model() string { return c.model }
