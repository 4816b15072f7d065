package nebius

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/meddoc/relay/internal/domain/vision"
)

const DefaultBaseURL = "https://api.studio.nebius.ai/v1/"

// Client is the chat-completion vision variant, served by Nebius AI Studio's
// OpenAI-compatible API. The image travels as a URL reference, not as bytes.
type Client struct {
	*openai.Client
	Model       string
	MaxTokens   int
	Temperature float32
}

func NewClient(apiKey, baseURL, model string, maxTokens int, temperature float32) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return &Client{
		Client:      openai.NewClientWithConfig(cfg),
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}

func (c *Client) Analyze(ctx context.Context, imageURL, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert image analyst.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", vision.ErrBackendFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", vision.ErrBackendFailed)
	}
	return resp.Choices[0].Message.Content, nil
}
