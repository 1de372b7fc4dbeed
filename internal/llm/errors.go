package llm

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Category classifies a failed diagnosis call.
type Category string

const (
	CategoryConfiguration Category = "configuration"
	CategoryAuth          Category = "auth"
	CategoryRateLimit     Category = "rate_limit"
	CategoryRequest       Category = "request"
	CategoryTransport     Category = "transport"
	CategoryUnknown       Category = "unknown"
)

// Categories lists every category, e.g. for pre-registering metric labels.
var Categories = []Category{
	CategoryConfiguration, CategoryAuth, CategoryRateLimit,
	CategoryRequest, CategoryTransport, CategoryUnknown,
}

// Error is a categorised provider failure.
type Error struct {
	Category   Category
	StatusCode int    // HTTP status when the provider answered, else 0
	Message    string // provider message, passed through verbatim
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// UserMessage is the text shown where the diagnosis would have appeared.
func (e *Error) UserMessage() string {
	switch e.Category {
	case CategoryConfiguration:
		return "AI Diagnosis unavailable. Please configure your AI provider API key."
	case CategoryAuth:
		if e.StatusCode == http.StatusForbidden {
			return "API key does not have permission. Please check your API key permissions."
		}
		return "Invalid API key. Please check your API key configuration."
	case CategoryRateLimit:
		return "Too many requests. Please wait a moment and try again."
	case CategoryRequest:
		return "Bad request to AI service. Error: " + orDefault(e.Message, "Unknown")
	case CategoryTransport:
		if strings.Contains(e.Message, "CORS") {
			return "Browser security error (CORS). The API key may need to be used from a backend server."
		}
		return "Unable to connect to AI service. Please check your internet connection."
	default:
		return "AI service error: " + orDefault(e.Message, "Please try again later.")
	}
}

// CategoryOf returns the category of err, or CategoryUnknown when err is not
// an *Error.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryUnknown
}

// UserMessage renders any diagnosis error for display.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return (&Error{Category: CategoryUnknown, Message: err.Error()}).UserMessage()
}

// ErrNotConfigured builds the error returned before any network attempt
// when the provider has no usable credential.
func ErrNotConfigured(provider string) *Error {
	return &Error{
		Category: CategoryConfiguration,
		Message:  provider + " API key is not configured",
	}
}

// FromStatus categorises a provider's HTTP status.
func FromStatus(status int, message string, cause error) *Error {
	e := &Error{StatusCode: status, Message: message, Cause: cause}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Category = CategoryAuth
	case http.StatusTooManyRequests:
		e.Category = CategoryRateLimit
	case http.StatusBadRequest:
		e.Category = CategoryRequest
	default:
		e.Category = CategoryUnknown
	}
	return e
}

// fromTransport categorises errors raised before a response was received.
// It returns nil when err does not look like a connectivity failure.
func fromTransport(err error) *Error {
	var urlErr *url.Error
	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &netErr) || errors.As(err, &opErr) {
		return &Error{Category: CategoryTransport, Message: err.Error(), Cause: err}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "network") || strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") || strings.Contains(err.Error(), "CORS") {
		return &Error{Category: CategoryTransport, Message: err.Error(), Cause: err}
	}
	return nil
}

// classify is the fallback used by providers after their SDK-specific checks.
func classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if t := fromTransport(err); t != nil {
		return t
	}
	return &Error{Category: CategoryUnknown, Message: err.Error(), Cause: err}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
