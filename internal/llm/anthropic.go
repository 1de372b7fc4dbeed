package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"painmap/pkg"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	client     anthropic.Client
	model      string
	maxTokens  int64
	configured bool
}

// NewAnthropicClient constructs a client. An empty or placeholder apiKey
// yields a client whose every call fails with a configuration error.
func NewAnthropicClient(apiKey, model string, maxTokens int, opts ...option.RequestOption) *AnthropicClient {
	if model == "" {
		model = DefaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &AnthropicClient{
		client:     anthropic.NewClient(opts...),
		model:      model,
		maxTokens:  int64(maxTokens),
		configured: KeyConfigured(apiKey),
	}
}

func (c *AnthropicClient) Name() string { return "anthropic" }

// Diagnose sends the prompt as a text block followed by one image block per
// attachment, in order.
func (c *AnthropicClient) Diagnose(ctx context.Context, prompt string, images []pkg.ImageAttachment) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured("Anthropic")
	}

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(images)+1)
	blocks = append(blocks, anthropic.NewTextBlock(prompt))
	for _, img := range images {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MediaType, img.Data))
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", FromStatus(apiErr.StatusCode, apiErr.Error(), err)
		}
		return "", classify(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
