package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "daneo",
	Short: "Terminal Korean vocabulary trainer",
	Long:  "Daneo (단어) — a terminal client for spaced-repetition Korean vocabulary study.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DANEO_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured db_path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
