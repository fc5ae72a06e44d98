package llm

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "ollama needs no key",
			cfg:     Config{Provider: "ollama", Ollama: OllamaConfig{BaseURL: "http://localhost:11434/v1"}},
			wantErr: false,
		},
		{
			name:    "ollama without base url",
			cfg:     Config{Provider: "ollama"},
			wantErr: true,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "ollama" {
		t.Fatalf("expected default provider 'ollama', got %q", cfg.Provider)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Fatalf("expected default model 'mistral', got %q", cfg.Ollama.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 60*time.Second {
		t.Fatalf("expected 60s timeout, got %s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("TALENTSCOUT_LLM_PROVIDER", "openai")
	t.Setenv("TALENTSCOUT_OPENAI_API_KEY", "sk-test")
	t.Setenv("TALENTSCOUT_OPENAI_MODEL", "gpt-4o")
	t.Setenv("TALENTSCOUT_LLM_TIMEOUT", "90s")

	cfg := ConfigFromEnv()

	if cfg.Provider != "openai" {
		t.Fatalf("expected provider 'openai', got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("expected model 'gpt-4o', got %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 90*time.Second {
		t.Fatalf("expected 90s timeout, got %s", cfg.Timeout)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if cfg := DiscoverConfig(); cfg.Provider != "ollama" {
		t.Fatalf("expected fallback to 'ollama', got %q", cfg.Provider)
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	if cfg := DiscoverConfig(); cfg.Provider != "anthropic" {
		t.Fatalf("expected 'anthropic', got %q", cfg.Provider)
	}

	t.Setenv("OPENAI_API_KEY", "sk-oai")
	if cfg := DiscoverConfig(); cfg.Provider != "openai" {
		t.Fatalf("expected 'openai', got %q", cfg.Provider)
	}

	t.Setenv("GEMINI_API_KEY", "sk-gem")
	if cfg := DiscoverConfig(); cfg.Provider != "gemini" {
		t.Fatalf("expected 'gemini', got %q", cfg.Provider)
	}
}
