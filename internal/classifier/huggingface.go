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

// HuggingFaceBaseURL is the Hugging Face inference API root.
const HuggingFaceBaseURL = "https://api-inference.huggingface.co"

// DefaultHuggingFaceModels is the free-tier model order.
var DefaultHuggingFaceModels = []string{
	"mistralai/Mistral-7B-Instruct-v0.3",
	"meta-llama/Meta-Llama-3-8B-Instruct",
	"microsoft/Phi-3-mini-4k-instruct",
	"HuggingFaceH4/zephyr-7b-beta",
}

const assistantMarker = "ASSISTANT:"

// HuggingFaceConfig configures a Hugging Face provider for one model.
type HuggingFaceConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Options GenerationOptions
	Timeout time.Duration
	Client  *http.Client
}

// HuggingFaceProvider calls a text-generation model on the inference API.
// Chat messages are flattened into a single ROLE: content prompt.
type HuggingFaceProvider struct {
	client *http.Client
	config HuggingFaceConfig
	apiURL string
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// NewHuggingFaceProvider creates a provider for cfg.Model.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) *HuggingFaceProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = HuggingFaceBaseURL
	}
	if cfg.Options == (GenerationOptions{}) {
		cfg.Options = DefaultGenerationOptions()
	}
	return &HuggingFaceProvider{
		client: newHTTPClient(cfg.Client, cfg.Timeout),
		config: cfg,
		apiURL: strings.TrimRight(cfg.BaseURL, "/") + "/models/" + cfg.Model,
	}
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface/" + p.config.Model
}

// Complete flattens messages into a prompt and returns the generated text.
func (p *HuggingFaceProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: flattenMessages(messages),
		Parameters: hfParameters{
			MaxNewTokens:   p.config.Options.MaxTokens,
			Temperature:    p.config.Options.Temperature,
			ReturnFullText: false,
		},
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

	return cleanGeneratedText(extractGeneratedText(respBody)), nil
}

// flattenMessages renders messages as "ROLE: content" lines followed by an
// open assistant turn.
func flattenMessages(messages []Message) string {
	lines := make([]string, len(messages))
	for i, m := range messages {
		lines[i] = strings.ToUpper(string(m.Role)) + ": " + m.Content
	}
	return strings.Join(lines, "\n") + "\n" + assistantMarker
}

// extractGeneratedText accepts either [{generated_text}] or {generated_text}
// and falls back to the raw body for anything else.
func extractGeneratedText(body []byte) string {
	var list []hfGeneration
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].GeneratedText != "" {
		return list[0].GeneratedText
	}
	var single hfGeneration
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText
	}
	return string(body)
}

// cleanGeneratedText drops an echoed prompt, keeping what follows the last
// assistant marker.
func cleanGeneratedText(text string) string {
	if i := strings.LastIndex(text, assistantMarker); i >= 0 {
		if rest := text[i+len(assistantMarker):]; strings.TrimSpace(rest) != "" {
			text = rest
		}
	}
	return strings.TrimSpace(text)
}
