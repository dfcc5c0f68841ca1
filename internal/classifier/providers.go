package classifier

import "time"

// Settings describes which providers to build. Providers without an API
// key are left out.
type Settings struct {
	GroqAPIKey        string
	GroqBaseURL       string
	GroqPrimaryModel  string
	GroqFallbackModel string

	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	HuggingFaceModels  []string

	Options GenerationOptions
	Timeout time.Duration
}

// NewProviders builds the provider order: Groq primary, Groq fallback,
// then every Hugging Face model.
func NewProviders(s Settings) []Provider {
	var providers []Provider

	if s.GroqAPIKey != "" {
		primary := s.GroqPrimaryModel
		if primary == "" {
			primary = GroqPrimaryModel
		}
		fallback := s.GroqFallbackModel
		if fallback == "" {
			fallback = GroqFallbackModel
		}
		for _, model := range []string{primary, fallback} {
			providers = append(providers, NewGroqProvider(GroqConfig{
				APIKey:  s.GroqAPIKey,
				BaseURL: s.GroqBaseURL,
				Model:   model,
				Options: s.Options,
				Timeout: s.Timeout,
			}))
			if fallback == primary {
				break
			}
		}
	}

	if s.HuggingFaceAPIKey != "" {
		models := s.HuggingFaceModels
		if len(models) == 0 {
			models = DefaultHuggingFaceModels
		}
		for _, model := range models {
			providers = append(providers, NewHuggingFaceProvider(HuggingFaceConfig{
				APIKey:  s.HuggingFaceAPIKey,
				BaseURL: s.HuggingFaceBaseURL,
				Model:   model,
				Options: s.Options,
				Timeout: s.Timeout,
			}))
		}
	}

	return providers
}
