package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"painmap/pkg"
)

// DefaultOpenAIModel is a vision-capable chat model.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client     *openai.Client
	model      string
	maxTokens  int
	configured bool
}

// NewOpenAIClient constructs an OpenAI-backed client for apiKey.
func NewOpenAIClient(apiKey, model string, maxTokens int) *OpenAIClient {
	return newOpenAIClient(apiKey, openai.DefaultConfig(apiKey), model, maxTokens)
}

// NewOpenAIClientWithBaseURL points the client at a compatible endpoint.
func NewOpenAIClientWithBaseURL(apiKey, baseURL, model string, maxTokens int) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return newOpenAIClient(apiKey, cfg, model, maxTokens)
}

func newOpenAIClient(apiKey string, cfg openai.ClientConfig, model string, maxTokens int) *OpenAIClient {
	if model == "" {
		// default to a modern small model; can be overridden via env
		model = DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &OpenAIClient{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		maxTokens:  maxTokens,
		configured: KeyConfigured(apiKey),
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

// Diagnose sends a single user message whose parts are the prompt followed
// by the images as data URLs.
func (c *OpenAIClient) Diagnose(ctx context.Context, prompt string, images []pkg.ImageAttachment) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured("OpenAI")
	}

	parts := make([]openai.ChatMessagePart, 0, len(images)+1)
	parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: prompt})
	for _, img := range images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    "data:" + img.MediaType + ";base64," + img.Data,
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", FromStatus(apiErr.HTTPStatusCode, apiErr.Message, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", FromStatus(reqErr.HTTPStatusCode, reqErr.Error(), err)
		}
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
