package server

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"countrytable/internal/app"
	"countrytable/internal/menu"
	"countrytable/internal/query"
	"countrytable/internal/render"
	"countrytable/internal/report"
)

// Server presents the countries table over HTTP: one page per menu
// action, a JSON API, and DOCX downloads.
type Server struct {
	svc      *app.Service
	log      *slog.Logger
	flagsDir string
	cache    *pageCache
}

func New(svc *app.Service, log *slog.Logger, flagsDir string) *Server {
	return &Server{
		svc:      svc,
		log:      log,
		flagsDir: flagsDir,
		cache:    newPageCache(),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), CORSMiddleware("*"), RequestLogger(s.log))

	r.GET("/", s.handleIndex)
	r.GET("/table/*action", s.handleTable)
	r.GET("/export/*action", s.handleExport)

	api := r.Group("/api")
	api.GET("/actions", s.handleActions)
	api.GET("/table/*action", s.handleTableJSON)
	api.GET("/countries/:code", s.handleCountry)

	// Flag images are an external collaborator; serve them only when the
	// directory actually exists.
	if s.flagsDir != "" {
		if info, err := os.Stat(s.flagsDir); err == nil && info.IsDir() {
			r.Static("/flags", s.flagsDir)
		}
	}

	return r
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/table/"+menu.DefaultActionID)
}

func (s *Server) handleTable(c *gin.Context) {
	id := actionParam(c)

	if page, ok := s.cache.Get(id); ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
		return
	}

	act, ok := menu.Find(id)
	if !ok {
		c.String(http.StatusNotFound, "unknown action %q", id)
		return
	}

	table := render.NewHTMLTable()
	if _, err := menu.NewController(s.svc.Engine, table).RunAction(act); err != nil {
		s.fail(c, err)
		return
	}

	var b strings.Builder
	err := pageTmpl.Execute(&b, pageData{
		Actions: menu.Actions(),
		Active:  act.ID,
		Caption: table.Caption(),
		Rows:    table.Rows(),
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	s.cache.Put(id, b.String())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

func (s *Server) handleActions(c *gin.Context) {
	acts := menu.Actions()
	out := make([]gin.H, 0, len(acts))
	for _, a := range acts {
		out = append(out, gin.H{"id": a.ID, "label": a.Label, "caption": a.Caption})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleTableJSON(c *gin.Context) {
	id := actionParam(c)
	act, ok := menu.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown action " + id})
		return
	}

	list, err := act.Query(s.svc.Engine)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"action":    act.ID,
		"caption":   act.Caption,
		"countries": list,
	})
}

func (s *Server) handleCountry(c *gin.Context) {
	rec, ok := s.svc.Dataset.Lookup(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown country"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleExport(c *gin.Context) {
	id := actionParam(c)
	act, ok := menu.Find(id)
	if !ok {
		c.String(http.StatusNotFound, "unknown action %q", id)
		return
	}

	rep := report.New()
	if _, err := menu.NewController(s.svc.Engine, rep).RunAction(act); err != nil {
		s.fail(c, err)
		return
	}

	dir, err := os.MkdirTemp("", "countrytable")
	if err != nil {
		s.fail(c, err)
		return
	}
	defer os.RemoveAll(dir)

	name := "countries-" + strings.ReplaceAll(act.ID, "/", "-") + ".docx"
	path := filepath.Join(dir, name)
	if err := rep.Save(path); err != nil {
		s.fail(c, err)
		return
	}
	c.FileAttachment(path, name)
}

func (s *Server) fail(c *gin.Context, err error) {
	var ve *query.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	s.log.Error("request failed", "id", c.GetString("request_id"), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// actionParam strips the leading slash gin keeps on wildcard params.
func actionParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("action"), "/")
}

type pageData struct {
	Actions []menu.Action
	Active  string
	Caption string
	Rows    []render.Row
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Countries</title>
<style>
body { font-family: sans-serif; margin: 2em; }
nav a { margin-right: 1em; }
nav a.active { font-weight: bold; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #999; padding: 4px 8px; }
caption { font-weight: bold; padding: 6px; }
</style>
</head>
<body>
<nav>
{{- range .Actions}}
<a href="/table/{{.ID}}"{{if eq .ID $.Active}} class="active"{{end}}>{{.Label}}</a>
{{- end}}
</nav>
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
<p><a href="/export/{{.Active}}">Download as DOCX</a></p>
</body>
</html>
`))
