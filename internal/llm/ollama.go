package llm

import "fmt"

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// ollamaPlaceholderKey satisfies the OpenAI wire format's bearer token
// requirement. Ollama ignores it; it is not a credential.
const ollamaPlaceholderKey = "ollama"

// OllamaProvider targets a locally hosted model server through its
// OpenAI-compatible endpoint, so the underlying SDK is reused. This is
// the no-credentials backend variant.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  ollamaPlaceholderKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})

	return &OllamaProvider{OpenAIProvider: inner}, nil
}
