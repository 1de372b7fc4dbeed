package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func httpAPIError(t *testing.T, code int) error {
	t.Helper()
	apiErr, ok := apierror.FromError(&googleapi.Error{Code: code, Message: http.StatusText(code)})
	require.True(t, ok)
	return apiErr
}

func grpcAPIError(t *testing.T, code codes.Code) error {
	t.Helper()
	apiErr, ok := apierror.FromError(status.Error(code, code.String()))
	require.True(t, ok)
	return apiErr
}

func TestClassifyGemini(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       Category
		wantStatus int
	}{
		{"http 401", httpAPIError(t, http.StatusUnauthorized), CategoryAuth, http.StatusUnauthorized},
		{"http 403", httpAPIError(t, http.StatusForbidden), CategoryAuth, http.StatusForbidden},
		{"http 429", httpAPIError(t, http.StatusTooManyRequests), CategoryRateLimit, http.StatusTooManyRequests},
		{"http 400", httpAPIError(t, http.StatusBadRequest), CategoryRequest, http.StatusBadRequest},
		{"http 500", httpAPIError(t, http.StatusInternalServerError), CategoryUnknown, http.StatusInternalServerError},
		{"grpc unauthenticated", grpcAPIError(t, codes.Unauthenticated), CategoryAuth, http.StatusUnauthorized},
		{"grpc permission denied", grpcAPIError(t, codes.PermissionDenied), CategoryAuth, http.StatusForbidden},
		{"grpc resource exhausted", grpcAPIError(t, codes.ResourceExhausted), CategoryRateLimit, http.StatusTooManyRequests},
		{"grpc invalid argument", grpcAPIError(t, codes.InvalidArgument), CategoryRequest, http.StatusBadRequest},
		{"grpc unavailable", grpcAPIError(t, codes.Unavailable), CategoryTransport, 0},
		{"grpc internal", grpcAPIError(t, codes.Internal), CategoryUnknown, 0},
		{"wrapped", fmt.Errorf("generate: %w", httpAPIError(t, http.StatusTooManyRequests)), CategoryRateLimit, http.StatusTooManyRequests},
		{"plain", errors.New("something odd"), CategoryUnknown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyGemini(tt.err)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("# 📊 QUICK SUMMARY\n"), genai.Text("Rest the knee.")}},
	}}}
	text, err := geminiText(resp)
	require.NoError(t, err)
	assert.Equal(t, "# 📊 QUICK SUMMARY\nRest the knee.", text)
}

func TestGeminiTextEmptyResponseFails(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"no candidates":  {},
		"nil content":    {Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
		"no text parts":  {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
		"blocked prompt": {PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}},
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			text, err := geminiText(resp)
			assert.Empty(t, text)
			require.Error(t, err)
			assert.Equal(t, CategoryUnknown, CategoryOf(err))
			assert.Contains(t, err.Error(), "empty response from Gemini")
		})
	}
}
