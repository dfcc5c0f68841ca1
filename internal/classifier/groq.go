package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// GroqBaseURL is the Groq API root.
	GroqBaseURL = "https://api.groq.com"
	// GroqPrimaryModel is tried first.
	GroqPrimaryModel = "llama-3.3-70b-versatile"
	// GroqFallbackModel is tried when the primary model fails.
	GroqFallbackModel = "mixtral-8x7b-32768"

	groqCompletionsPath = "/openai/v1/chat/completions"
)

// GroqConfig configures a Groq provider for one model.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Options GenerationOptions
	Timeout time.Duration
	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// GroqProvider talks to the OpenAI-compatible Groq chat completions API.
type GroqProvider struct {
	client *http.Client
	config GroqConfig
	apiURL string
}

type groqRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type groqResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewGroqProvider creates a Groq provider. Empty fields take defaults.
func NewGroqProvider(cfg GroqConfig) *GroqProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = GroqBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = GroqPrimaryModel
	}
	if cfg.Options == (GenerationOptions{}) {
		cfg.Options = DefaultGenerationOptions()
	}
	return &GroqProvider{
		client: newHTTPClient(cfg.Client, cfg.Timeout),
		config: cfg,
		apiURL: strings.TrimRight(cfg.BaseURL, "/") + groqCompletionsPath,
	}
}

// Name returns "groq/<model>".
func (p *GroqProvider) Name() string {
	return "groq/" + p.config.Model
}

// Complete sends messages to the chat completions endpoint.
func (p *GroqProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(groqRequest{
		Messages:    messages,
		Model:       p.config.Model,
		Temperature: p.config.Options.Temperature,
		MaxTokens:   p.config.Options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed groqResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%s: %s", p.Name(), parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return parsed.Choices[0].Message.Content, nil
}
