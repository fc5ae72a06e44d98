package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the model backend and its request log",
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a test request to the configured backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), zap.NewNop(), store.NopEventRepo{})
		if err != nil {
			return fmt.Errorf("configure model backend: %w", err)
		}

		fmt.Printf("Backend: %s\n", provider.ModelID())

		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: pong"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}

		fmt.Printf("Response: %s\n", strings.TrimSpace(string(resp.Content)))
		fmt.Printf("Tokens: %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

var llmLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent model request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No model requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-24s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-24s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved backend configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg := llm.ConfigFromEnv()

		// Redacted view: never print credentials.
		view := map[string]any{
			"provider": cfg.Provider,
			"ollama":   map[string]any{"model": cfg.Ollama.Model, "base_url": cfg.Ollama.BaseURL},
			"openai":   map[string]any{"model": cfg.OpenAI.Model, "api_key_set": cfg.OpenAI.APIKey != ""},
			"anthropic": map[string]any{
				"model":       cfg.Anthropic.Model,
				"api_key_set": cfg.Anthropic.APIKey != "",
			},
			"gemini": map[string]any{
				"model":       cfg.Gemini.Model,
				"api_key_set": cfg.Gemini.APIKey != "",
			},
			"timeout": cfg.Timeout.String(),
		}

		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	llmLogCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmLogCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (question-gen, chat-answer, skill-estimate)")

	llmCmd.AddCommand(llmPingCmd)
	llmCmd.AddCommand(llmLogCmd)
	llmCmd.AddCommand(llmConfigCmd)
}
