package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daneoapp/daneo/internal/app"
	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/selfupdate"
	"github.com/daneoapp/daneo/internal/store"
	"github.com/daneoapp/daneo/internal/studyapi"
)

// runApp loads config, opens the store, builds dependencies, and
// launches the TUI. autoStart skips the home menu; a non-empty resumeID
// additionally adopts that session instead of starting a new one.
func runApp(cmd *cobra.Command, resumeID string, autoStart bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Config:    cfg,
		Service:   studyapi.NewClient(cfg.APIURL, cfg.APIToken),
		Reviews:   st.Reviews(),
		Notes:     st.WrongNotes(),
		Checker:   selfupdate.NewChecker(),
		Version:   version,
		AutoStart: autoStart,
	}

	if resumeID != "" {
		opts.Resume = &studyapi.Session{ID: resumeID}
	}

	return app.Run(opts)
}
