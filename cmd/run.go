package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsharan/talentscout/internal/app"
	"github.com/rsharan/talentscout/internal/candidate"
	"github.com/rsharan/talentscout/internal/interview"
	"github.com/rsharan/talentscout/internal/llm"
	"github.com/rsharan/talentscout/internal/session"
	"github.com/rsharan/talentscout/internal/store"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	// Credentials and overrides may live in a local .env file.
	// A missing file is fine.
	_ = godotenv.Load()

	logger, cleanup, err := buildLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer cleanup()

	ctx := cmd.Context()

	// The event log is best-effort: if the database cannot be opened
	// the session still runs, just without request history.
	var events store.EventRepo = store.NopEventRepo{}
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, openErr := store.Open(dbPath); openErr == nil {
			defer st.Close()
			events = st.EventRepo()
		} else {
			logger.Warn("event database unavailable", zap.String("path", dbPath), zap.Error(openErr))
		}
	} else {
		logger.Warn("resolve event database path", zap.Error(err))
	}

	provider, err := llm.NewProviderFromEnv(ctx, logger, events)
	if err != nil {
		return fmt.Errorf("configure model backend: %w", err)
	}

	cfg := interview.DefaultConfig()
	deps := app.Deps{
		Questions:  interview.NewQuestionService(provider, cfg),
		Chat:       interview.NewChatService(provider, cfg),
		Estimator:  interview.NewEstimator(provider, cfg),
		Session:    session.New(),
		Candidates: candidate.NewFileStore(resolveStorePath(cmd)),
		ModelID:    provider.ModelID(),
	}

	return app.Run(deps)
}

// buildLogger returns a zap logger. The TUI owns the terminal, so logs
// go to a file next to the event database, and only when
// TALENTSCOUT_DEBUG is set.
func buildLogger() (*zap.Logger, func(), error) {
	if os.Getenv("TALENTSCOUT_DEBUG") == "" {
		return zap.NewNop(), func() {}, nil
	}

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return nil, nil, err
	}
	logPath := filepath.Join(filepath.Dir(dbPath), "talentscout.log")

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
