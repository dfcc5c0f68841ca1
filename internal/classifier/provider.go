// Package classifier provides the LLM provider chain used to classify
// tasks when keyword matching finds nothing.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrAllProvidersFailed is returned when every provider in the chain failed.
	ErrAllProvidersFailed = errors.New("all classifier providers failed")
	// ErrNoProviders is returned by a chain without providers.
	ErrNoProviders = errors.New("no classifier providers configured")
	// ErrEmptyCompletion is returned when a provider answered with no content.
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)

// DefaultHTTPTimeout bounds a single provider request.
const DefaultHTTPTimeout = 30 * time.Second

// Role of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Provider is one LLM backend able to complete a chat.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Complete returns the assistant reply for messages.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// GenerationOptions are sampling parameters shared by all providers.
type GenerationOptions struct {
	Temperature float64
	MaxTokens   int
}

// DefaultGenerationOptions returns the sampling defaults.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		Temperature: 0.7,
		MaxTokens:   1024,
	}
}

// HTTPError is a non-2xx answer from a provider.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP error: status=%d, body=%s", e.Provider, e.StatusCode, e.Body)
}

func newHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}
