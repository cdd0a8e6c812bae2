package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/satyacheck-ai/satyacheck/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client talks to an OpenAI-compatible chat-completion endpoint. Gemini's
// compatibility endpoint works through BaseURL.
type Client struct {
	*openai.Client
	Model  string
	Region string
}

func NewClient(apiKey, baseURL, model, region string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model, Region: region}
}

// Analyze sends one templated instruction (plus optional image) to the model
// and returns the raw response text. The call is synchronous and stateless;
// errors are returned untyped for the application layer to wrap.
func (c *Client) Analyze(ctx context.Context, content string, image []byte, mime string) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	instruction := prompt.Build(c.Region, content)
	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.2,
		MaxTokens:   maxTokens,
	}

	if len(image) > 0 {
		user.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: instruction},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image)),
				},
			},
		}
	} else {
		user.Content = instruction
		// JSON mode is rejected by some providers when image parts are present,
		// so it is only requested for text-only calls. Fence stripping in the
		// normalizer covers the image path.
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	req.Messages = []openai.ChatCompletionMessage{user}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
