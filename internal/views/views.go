// Package views holds the embedded HTML templates.
package views

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/yukikurage/task-manager/internal/routes"
)

//go:embed templates
var files embed.FS

// Load parses every template with the helper functions bound to registry.
func Load(registry *routes.Registry) (*template.Template, error) {
	return template.New("").
		Funcs(Funcs(registry)).
		ParseFS(files, "templates/*.html", "templates/*/*.html")
}

// Funcs are the helpers available inside templates.
func Funcs(registry *routes.Registry) template.FuncMap {
	return template.FuncMap{
		"route": registry.Reverse,
		"idstr": func(id uint64) string {
			return strconv.FormatUint(id, 10)
		},
		"hasID": func(ids []string, id uint64) bool {
			want := strconv.FormatUint(id, 10)
			for _, v := range ids {
				if v == want {
					return true
				}
			}
			return false
		},
		"formatDate": func(t time.Time) string {
			return t.Format("02.01.2006, 15:04:05")
		},
	}
}
