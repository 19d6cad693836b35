package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"countrytable/internal/app"
	"countrytable/internal/menu"
	"countrytable/internal/render"
	"countrytable/internal/report"
)

var (
	exportOut  string
	exportHTML bool
)

var exportCmd = &cobra.Command{
	Use:   "export <action-id>",
	Short: "Export one action's table as DOCX (or HTML with --html)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default derived from the action id)")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "write an HTML page instead of DOCX")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := app.NewService(dataPath)
	if err != nil {
		return err
	}

	id := args[0]
	out := exportOut
	if out == "" {
		out = "countries-" + strings.ReplaceAll(id, "/", "-")
		if exportHTML {
			out += ".html"
		} else {
			out += ".docx"
		}
	}

	if exportHTML {
		table := render.NewHTMLTable()
		n, err := menu.NewController(svc.Engine, table).Run(id)
		if err != nil {
			return err
		}
		doc, err := table.Document()
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Printf("%s — %d countries -> %s\n", table.Caption(), n, out)
		return nil
	}

	rep := report.New()
	n, err := menu.NewController(svc.Engine, rep).Run(id)
	if err != nil {
		return err
	}
	if err := rep.Save(out); err != nil {
		return err
	}
	fmt.Printf("%s — %d countries -> %s\n", rep.Caption(), n, out)
	return nil
}
