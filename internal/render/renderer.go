package render

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"countrytable/internal/query"
)

// Row is one fully formatted table row. Area and Population carry grouped
// digits; FlagSrc follows the /flags/<lowercase code>.png convention.
type Row struct {
	FlagSrc    string `json:"flag_src"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Continent  string `json:"continent"`
	Area       string `json:"area"`
	Population string `json:"population"`
	Capital    string `json:"capital"`
}

// Target is the rendering port: the table body and caption of whatever
// hosts the output. Implementations: HTMLTable, report.Report.
type Target interface {
	ClearRows()
	AppendRow(row Row)
	SetCaption(caption string)
}

const flagPathPrefix = "/flags/"

// TableRenderer converts projected countries into rows on a Target.
type TableRenderer struct {
	target  Target
	printer *message.Printer
}

func NewTableRenderer(target Target) *TableRenderer {
	return &TableRenderer{
		target:  target,
		printer: message.NewPrinter(language.English),
	}
}

// RowFor builds one row. Pure construction; nothing is attached to the
// target.
func (r *TableRenderer) RowFor(pc query.ProjectedCountry) Row {
	return Row{
		FlagSrc:    flagPathPrefix + strings.ToLower(pc.Code) + ".png",
		Code:       pc.Code,
		Name:       pc.Name,
		Continent:  pc.Continent,
		// Areas display as whole km²; fractional areas round, not truncate.
		Area:       r.printer.Sprintf("%d", int64(math.Round(pc.AreaKm2))),
		Population: r.printer.Sprintf("%d", pc.Population),
		Capital:    pc.Capital,
	}
}

// Render clears the target and appends one row per entry, in input order.
// The caller controls the final row order entirely through the input.
func (r *TableRenderer) Render(list []query.ProjectedCountry) {
	r.target.ClearRows()
	for _, pc := range list {
		r.target.AppendRow(r.RowFor(pc))
	}
}
