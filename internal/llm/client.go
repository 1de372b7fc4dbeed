// Package llm talks to the hosted model that writes the diagnosis summary.
// Every provider returns either the response text or an *Error carrying one
// of a fixed set of categories.
package llm

import (
	"context"
	"strings"

	"painmap/pkg"
)

// Client sends one prompt with optional images and returns the model's text.
// Implementations perform a single attempt with no retries.
type Client interface {
	Diagnose(ctx context.Context, prompt string, images []pkg.ImageAttachment) (string, error)
	Name() string
}

// DefaultMaxTokens caps the length of a diagnosis response.
const DefaultMaxTokens = 4096

// placeholderKey is the value shipped in the example environment file.
const placeholderKey = "your_api_key_here"

// KeyConfigured reports whether key looks like a real credential.
func KeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderKey
}
