package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"

	"painmap/pkg"
)

// DefaultGeminiModel is a multimodal Gemini model.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient calls the Gemini generateContent API. A client connection is
// opened per call, matching the one-request-per-diagnosis usage.
type GeminiClient struct {
	apiKey    string
	model     string
	maxTokens int32
	opts      []option.ClientOption
}

// NewGeminiClient constructs a Gemini-backed client.
func NewGeminiClient(apiKey, model string, maxTokens int, opts ...option.ClientOption) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &GeminiClient{apiKey: apiKey, model: model, maxTokens: int32(maxTokens), opts: opts}
}

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) Diagnose(ctx context.Context, prompt string, images []pkg.ImageAttachment) (string, error) {
	if !KeyConfigured(c.apiKey) {
		return "", ErrNotConfigured("Gemini")
	}

	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(c.apiKey)}, c.opts...)...)
	if err != nil {
		return "", classifyGemini(fmt.Errorf("failed to create Gemini client: %w", err))
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetMaxOutputTokens(c.maxTokens)

	parts := []genai.Part{genai.Text(prompt)}
	for _, img := range images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return "", &Error{Category: CategoryRequest, Message: "image attachment is not valid base64", Cause: err}
		}
		parts = append(parts, genai.ImageData(strings.TrimPrefix(img.MediaType, "image/"), data))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", classifyGemini(err)
	}
	return geminiText(resp)
}

// geminiText concatenates the text parts of the first candidate. A response
// without content, such as one blocked by safety filters, is an error.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		msg := "empty response from Gemini"
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			msg = fmt.Sprintf("%s (prompt blocked: %s)", msg, resp.PromptFeedback.BlockReason)
		}
		return "", &Error{Category: CategoryUnknown, Message: msg}
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &Error{Category: CategoryUnknown, Message: "empty response from Gemini"}
	}
	return sb.String(), nil
}

// grpcToHTTP maps the status codes Gemini reports over gRPC onto the HTTP
// statuses the categories are defined in.
var grpcToHTTP = map[codes.Code]int{
	codes.Unauthenticated:   http.StatusUnauthorized,
	codes.PermissionDenied:  http.StatusForbidden,
	codes.ResourceExhausted: http.StatusTooManyRequests,
	codes.InvalidArgument:   http.StatusBadRequest,
}

func classifyGemini(err error) *Error {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if status := apiErr.HTTPCode(); status > 0 {
			return FromStatus(status, apiErr.Error(), err)
		}
		if st := apiErr.GRPCStatus(); st != nil {
			if st.Code() == codes.Unavailable {
				return &Error{Category: CategoryTransport, Message: st.Message(), Cause: err}
			}
			if status, ok := grpcToHTTP[st.Code()]; ok {
				return FromStatus(status, st.Message(), err)
			}
			return &Error{Category: CategoryUnknown, Message: st.Message(), Cause: err}
		}
	}
	return classify(err)
}
