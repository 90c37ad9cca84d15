package ui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"flightcal/server/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderTemplate renders one of the embedded page templates.
// Output is buffered so a failed render never leaves a half-written page.
func RenderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		logging.Error("Template render failed", "template", templateName, "error", err)
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
