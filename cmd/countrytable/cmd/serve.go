package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"countrytable/internal/app"
	"countrytable/internal/server"
)

var (
	serveAddr  string
	serveFlags string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the countries table over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveFlags, "flags", "", "directory with per-country flag images")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := app.NewService(dataPath)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := server.New(svc, log, serveFlags)

	log.Info("listening", "addr", serveAddr, "countries", svc.Dataset.Len())
	return srv.Router().Run(serveAddr)
}
