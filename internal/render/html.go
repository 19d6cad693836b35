package render

import (
	"html/template"
	"strings"
)

// HTMLTable is an in-memory Target that can serialize itself as a
// standalone HTML page.
type HTMLTable struct {
	caption string
	rows    []Row
}

func NewHTMLTable() *HTMLTable {
	return &HTMLTable{}
}

func (t *HTMLTable) ClearRows() {
	t.rows = t.rows[:0]
}

func (t *HTMLTable) AppendRow(row Row) {
	t.rows = append(t.rows, row)
}

func (t *HTMLTable) SetCaption(caption string) {
	t.caption = caption
}

func (t *HTMLTable) Caption() string { return t.caption }

// Rows returns a copy of the current row set in append order.
func (t *HTMLTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

var docTmpl = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Countries</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 8px; }
caption { font-weight: bold; padding: 6px; }
</style>
</head>
<body>
<table>
<caption>{{.Caption}}</caption>
<thead>
<tr><th></th><th>Code</th><th>Name</th><th>Continent</th><th>Area (km²)</th><th>Population</th><th>Capital</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td><img src="{{.FlagSrc}}" alt="{{.Code}}" width="24"></td><td>{{.Code}}</td><td>{{.Name}}</td><td>{{.Continent}}</td><td>{{.Area}}</td><td>{{.Population}}</td><td>{{.Capital}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// Document serializes the table as a complete HTML page.
func (t *HTMLTable) Document() (string, error) {
	var b strings.Builder
	err := docTmpl.Execute(&b, struct {
		Caption string
		Rows    []Row
	}{t.caption, t.rows})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
