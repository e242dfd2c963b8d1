package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/store"
	"github.com/abhisek/reasonprep/internal/tracker"
	"github.com/abhisek/reasonprep/internal/traps"
)

var rootCmd = &cobra.Command{
	Use:   "reasonprep",
	Short: "Logical-reasoning practice analysis",
	Long:  "Reasonprep analyzes logical-reasoning questions with deterministic rules: type classification, argument decomposition, wrong-answer diagnosis, timed practice, and personalized practice sets.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REASONPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config with tuning thresholds")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REASONPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadTunables reads the --config TOML if given, else returns defaults.
func loadTunables(cmd *cobra.Command) (config.Tunables, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadHistory rehydrates a performance tracker from the attempt log.
func loadHistory(ctx context.Context, st *store.Store, tun config.Tunables) (*tracker.Tracker, error) {
	repo, err := st.EventRepo()
	if err != nil {
		return nil, err
	}
	attempts, err := repo.RecentAttempts(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	tr := tracker.New(tun)
	for _, a := range attempts {
		patterns := make([]traps.Pattern, 0, len(a.Patterns))
		for _, p := range a.Patterns {
			patterns = append(patterns, traps.Pattern(p))
		}
		tr.Add(tracker.Entry{
			QuestionID:      a.QuestionID,
			Type:            qtype.Type(a.QuestionType),
			Difficulty:      a.Difficulty,
			TimeSpent:       a.TimeSpent,
			RecommendedTime: a.RecommendedSeconds,
			Correct:         a.Correct,
			ChosenAnswer:    a.ChosenAnswer,
			CorrectAnswer:   a.CorrectAnswer,
			Patterns:        patterns,
			SessionID:       a.SessionID,
		})
	}
	return tr, nil
}
