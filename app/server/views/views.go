package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"human-sourced-registry/app/server/types"
)

//go:embed templates/*.html
var files embed.FS

const placeholder = "—"

var _ echo.Renderer = (*Views)(nil)

type Views struct {
	t *template.Template
}

func New() (*Views, error) {
	t, err := template.New("views").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Views{t: t}, nil
}

func (v *Views) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return v.t.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"pathEscape": url.PathEscape,
	"str": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"tier": func(s *string) string {
		if s == nil || *s == "" {
			return placeholder
		}
		return strings.ReplaceAll(*s, "_", "-")
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return placeholder
		}
		return t.UTC().Format("2006-01-02")
	},
	"datePtr": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return placeholder
		}
		return t.UTC().Format("2006-01-02")
	},
	"statusTitle": func(s string) string {
		if s == "" {
			return placeholder
		}
		return types.Status(strings.ToLower(s)).Title()
	},
	"statusClass": func(s string) string {
		if st, ok := types.ParseStatus(s); ok {
			return "chip-" + string(st)
		}
		return "chip-unknown"
	},
	"year": func() int {
		return time.Now().Year()
	},
}
