package llm

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Category
	}{
		{http.StatusUnauthorized, CategoryAuth},
		{http.StatusForbidden, CategoryAuth},
		{http.StatusTooManyRequests, CategoryRateLimit},
		{http.StatusBadRequest, CategoryRequest},
		{http.StatusInternalServerError, CategoryUnknown},
		{529, CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := FromStatus(tt.status, "boom", nil)
			assert.Equal(t, tt.want, err.Category)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestUserMessages(t *testing.T) {
	assert.Contains(t, FromStatus(401, "", nil).UserMessage(), "Invalid API key")
	assert.Contains(t, FromStatus(403, "", nil).UserMessage(), "permission")
	assert.Contains(t, FromStatus(429, "", nil).UserMessage(), "Too many requests")
	assert.Equal(t, "Bad request to AI service. Error: max_tokens too large",
		FromStatus(400, "max_tokens too large", nil).UserMessage())
	assert.Equal(t, "AI service error: overloaded", FromStatus(529, "overloaded", nil).UserMessage())
	assert.Contains(t, ErrNotConfigured("Anthropic").UserMessage(), "configure")
	assert.Contains(t, (&Error{Category: CategoryTransport, Message: "CORS blocked"}).UserMessage(), "CORS")
	assert.Contains(t, (&Error{Category: CategoryTransport, Message: "dial tcp"}).UserMessage(), "internet connection")
}

func TestClassify(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	assert.Equal(t, CategoryTransport, classify(fmt.Errorf("post: %w", opErr)).Category)
	assert.Equal(t, CategoryTransport, classify(errors.New("network unreachable")).Category)
	assert.Equal(t, CategoryUnknown, classify(errors.New("something odd")).Category)

	inner := FromStatus(429, "slow down", nil)
	assert.Same(t, inner, classify(fmt.Errorf("wrapped: %w", inner)))
}

func TestUserMessageForPlainError(t *testing.T) {
	assert.Equal(t, "AI service error: oops", UserMessage(errors.New("oops")))
	assert.Equal(t, CategoryUnknown, CategoryOf(errors.New("oops")))
	assert.Equal(t, CategoryRateLimit, CategoryOf(FromStatus(429, "", nil)))
}

func TestKeyConfigured(t *testing.T) {
	assert.False(t, KeyConfigured(""))
	assert.False(t, KeyConfigured("  "))
	assert.False(t, KeyConfigured("your_api_key_here"))
	assert.True(t, KeyConfigured("sk-test"))
}
