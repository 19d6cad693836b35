package cmd

import (
	"github.com/spf13/cobra"

	"countrytable/internal/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the table interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(dataPath)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
