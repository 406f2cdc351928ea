package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local study data",
	RunE: func(cmd *cobra.Command, args []string) error {
		notesOnly, _ := cmd.Flags().GetBool("notes")
		yes, _ := cmd.Flags().GetBool("yes")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if notesOnly {
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			if err := st.WrongNotes().Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear wrong notes: %w", err)
			}
			fmt.Println("Wrong notes cleared.")
			return nil
		}

		if !yes {
			fmt.Println("This deletes the local database (review log, wrong notes, stats).")
			fmt.Println("Re-run with --yes to confirm, or --notes to clear wrong notes only.")
			return nil
		}

		// Remove the database plus SQLite WAL sidecar files.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Local study data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("notes", false, "Clear only the wrong-note log")
	resetCmd.Flags().Bool("yes", false, "Confirm deleting the local database")
}
