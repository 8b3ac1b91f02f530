package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"home",
	"book",
	"booking_success",
	"doctor_login",
	"doctor_dashboard",
	"doctor_reminders",
}

// Renderer executes the embedded HTML templates. Each page is parsed
// together with the shared layout at construction time, so a broken
// template fails startup rather than a request.
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data map[string]interface{}) error {
	t, ok := r.templates[page]
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return fmt.Errorf("unknown template %q", page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return t.ExecuteTemplate(w, "layout", data)
}
