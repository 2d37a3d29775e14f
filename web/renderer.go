// Package web renders the HTML pages and serves the embedded static
// assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bintrack/pkg/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// StaticFS is the embedded asset tree rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct{ templates *template.Template }

func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"fmtDate":   fmtDate,
		"fmtWeight": fmtWeight,
		"yesNo":     yesNo,
	}).ParseFS(templateFS, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render injects the session-derived fields every page shows (flash
// messages, login state) before executing the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	m, ok := data.(echo.Map)
	if !ok {
		m = echo.Map{}
	}
	if _, has := m["Flashes"]; !has {
		m["Flashes"] = auth.Flashes(c)
	}
	m["LoggedIn"] = auth.IsLoggedIn(c)
	return r.templates.ExecuteTemplate(w, name, m)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtWeight(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
