package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"countrytable/internal/menu"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the available menu actions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range menu.Actions() {
			fmt.Printf("%-24s %s\n", a.ID, a.Caption)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
