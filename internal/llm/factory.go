package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/rsharan/talentscout/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the backend wrapped with timeout, logging, and retry
// middleware: caller → retry → logging → timeout → backend.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "ollama":
		base, err = NewOllamaProvider(cfg.Ollama)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	bounded := WithTimeout(base, cfg.Timeout)
	logged := WithLogging(bounded, logger, events)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from TALENTSCOUT_* env config,
// falling back to standard API key discovery when no provider is set.
func NewProviderFromEnv(ctx context.Context, logger *zap.Logger, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if os.Getenv("TALENTSCOUT_LLM_PROVIDER") == "" {
		cfg = DiscoverConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, logger, events)
}
