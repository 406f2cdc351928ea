package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		ctx := cmd.Context()

		stats, err := st.Reviews().Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		noteCount, err := st.WrongNotes().Count(ctx)
		if err != nil {
			return fmt.Errorf("count wrong notes: %w", err)
		}

		if stats.CardsStudied == 0 {
			fmt.Println("No study history yet. Run `daneo study` to begin.")
			return nil
		}

		fmt.Printf("Sessions completed:  %d\n", stats.Sessions)
		fmt.Printf("Cards studied:       %d\n", stats.CardsStudied)
		fmt.Printf("Correct answers:     %d (%.0f%%)\n", stats.Correct, stats.Accuracy()*100)
		fmt.Printf("Time studying:       %s\n", formatDuration(stats.TotalTimeMs))
		if !stats.LastStudiedAt.IsZero() {
			fmt.Printf("Last studied:        %s\n", stats.LastStudiedAt.Format("Jan 02, 2006 15:04"))
		}
		fmt.Printf("Wrong notes kept:    %d of %d\n", noteCount, store.WrongNoteCap)
		return nil
	},
}

// formatDuration renders accumulated answer time as h/m/s.
func formatDuration(ms int64) string {
	secs := ms / 1000
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
}
