package web

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Renderer executes the embedded page templates for echo
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"percent": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
		"number":  func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	}).ParseFS(TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
