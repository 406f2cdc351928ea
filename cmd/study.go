package cmd

import (
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		resumeID, _ := cmd.Flags().GetString("resume")
		return runApp(cmd, resumeID, true)
	},
}

func init() {
	studyCmd.Flags().String("resume", "", "Resume an existing session by id instead of starting a new one")
}
