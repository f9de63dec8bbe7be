package web

import (
	"html/template"
	"path/filepath"
)

// TemplateFuncs are available to every page template.
var TemplateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

// ParseTemplates loads the page templates from dir.
func ParseTemplates(dir string) (*template.Template, error) {
	return template.New("").Funcs(TemplateFuncs).ParseFiles(
		filepath.Join(dir, "layout.html"),
		filepath.Join(dir, "wheel.html"),
	)
}
