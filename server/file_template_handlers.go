package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*
var templateFiles embed.FS

// ParseTemplate parses a template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/"+name)
}

// templateHandler renders an embedded page. The template is parsed once at startup.
func (s *Server) templateHandler(name string, data func(r *http.Request) any) http.HandlerFunc {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data(r)); err != nil {
			writeError(w, r, err)
		}
	}
}
