// Package web renders the server-side HTML views. Templates are embedded in
// the binary; each page is parsed together with the shared layout.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the context handed to every template.
type PageData struct {
	Title     string
	User      string
	Flashes   []string
	Sightings []models.Sighting
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{"login", "register", "sighting", "dashboard"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data PageData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, "layout", data)
}
