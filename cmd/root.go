package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rsharan/talentscout/internal/candidate"
	"github.com/rsharan/talentscout/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "talentscout",
	Short: "Terminal hiring assistant for technical screening",
	Long: "TalentScout — terminal hiring assistant that collects candidate details,\n" +
		"generates tailored technical interview questions, runs a Q&A session and\n" +
		"estimates skill levels per technology.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides TALENTSCOUT_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Path to the candidates JSON file (overrides TALENTSCOUT_CANDIDATES env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(candidatesCmd)
}

// resolveDBPath returns the event database path using --db flag
// (highest priority), then TALENTSCOUT_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStorePath returns the candidates file path using --store flag,
// then TALENTSCOUT_CANDIDATES env var, then candidates.json in the
// working directory.
func resolveStorePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("store"); p != "" {
		return p
	}
	if p := os.Getenv("TALENTSCOUT_CANDIDATES"); p != "" {
		return p
	}
	return candidate.DefaultStoreFile
}
