package report

import (
	"fmt"

	"github.com/gingfrederik/docx"

	"countrytable/internal/render"
)

// Report is a render target that accumulates rows and saves them as a DOCX
// document. One Report produces one file; reuse across actions goes
// through ClearRows like any other target.
type Report struct {
	caption string
	rows    []render.Row
}

func New() *Report {
	return &Report{}
}

func (r *Report) ClearRows() {
	r.rows = r.rows[:0]
}

func (r *Report) AppendRow(row render.Row) {
	r.rows = append(r.rows, row)
}

func (r *Report) SetCaption(caption string) {
	r.caption = caption
}

func (r *Report) Caption() string { return r.caption }

func (r *Report) Rows() []render.Row {
	out := make([]render.Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// Save writes the accumulated table to path.
func (r *Report) Save(path string) error {
	f := docx.NewFile()

	title := f.AddParagraph()
	run := title.AddText(r.caption)
	run.Size(18)
	f.AddParagraph() // Spacer

	header := f.AddParagraph()
	hrun := header.AddText("Code | Name | Continent | Area (km²) | Population | Capital")
	hrun.Size(10)
	hrun.Color("808080")
	f.AddParagraph().AddText("--------------------------------------------------")

	for _, row := range r.rows {
		p := f.AddParagraph()
		p.AddText(fmt.Sprintf("%s | %s | %s | %s | %s | %s",
			row.Code, row.Name, row.Continent, row.Area, row.Population, row.Capital))
	}

	f.AddParagraph() // Spacer
	foot := f.AddParagraph()
	frun := foot.AddText(fmt.Sprintf("%d countries", len(r.rows)))
	frun.Size(10)
	frun.Color("808080")

	return f.Save(path)
}
