package app

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"countrytable/internal/menu"
	"countrytable/internal/render"
	"countrytable/internal/report"
)

const browseOutputFile = "countries.html"

// Run drives the interactive terminal browser: print the action menu,
// read a selection, run it and write the resulting table to
// countries.html in the working directory. Loops until the user quits.
func Run(datasetPath string) error {
	return run(datasetPath, bufio.NewReader(os.Stdin))
}

func run(datasetPath string, in *bufio.Reader) error {
	svc, err := NewService(datasetPath)
	if err != nil {
		return err
	}

	acts := menu.Actions()

	table := render.NewHTMLTable()
	ctrl := menu.NewController(svc.Engine, table)

	current := menu.DefaultActionID
	n, err := ctrl.Run(current)
	if err != nil {
		return err
	}
	if err := writeTable(table); err != nil {
		return err
	}
	fmt.Printf("%s — %d countries -> %s\n", table.Caption(), n, browseOutputFile)

	for {
		fmt.Println("\nShow the table by:")
		for i, a := range acts {
			fmt.Printf("%2d) %s\n", i+1, a.Label)
		}
		fmt.Println(" d) Save current table as DOCX")
		fmt.Println(" q) Quit")
		fmt.Print("> ")

		choice, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)

		switch choice {
		case "q":
			return nil
		case "d":
			if err := exportCurrent(svc, current); err != nil {
				fmt.Println("Error saving report:", err)
				continue
			}
			fmt.Println("Report saved: countries.docx")
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(acts) {
				fmt.Printf("Invalid choice. Please select 1–%d, d or q.\n", len(acts))
				continue
			}
			act := acts[idx-1]
			n, err := ctrl.RunAction(act)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			if err := writeTable(table); err != nil {
				return err
			}
			current = act.ID
			fmt.Printf("%s — %d countries -> %s\n", table.Caption(), n, browseOutputFile)
		}
	}
}

func writeTable(table *render.HTMLTable) error {
	doc, err := table.Document()
	if err != nil {
		return err
	}
	return os.WriteFile(browseOutputFile, []byte(doc), 0o644)
}

func exportCurrent(svc *Service, actionID string) error {
	rep := report.New()
	ctrl := menu.NewController(svc.Engine, rep)
	if _, err := ctrl.Run(actionID); err != nil {
		return err
	}
	return rep.Save("countries.docx")
}
