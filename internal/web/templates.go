package web

import (
	"embed"
	"html/template"

	"pokedex/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"badge": func(label string) template.CSS { return template.CSS(models.BadgeColor(label)) },
	"tenths": models.FormatTenths,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
