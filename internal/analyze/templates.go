package analyze

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for registration on the engine.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"percent": func(v float64) string {
			return fmt.Sprintf("%.0f", v*100)
		},
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
}
