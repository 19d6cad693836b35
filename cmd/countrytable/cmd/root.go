package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:   "countrytable",
	Short: "Browse, serve and export a localized table of countries",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"path to a countries dataset JSON file (defaults to the embedded dataset)")
}
