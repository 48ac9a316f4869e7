package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

// ParseTemplates parses the page and partial templates.
func ParseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(templatesFS, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := templatesFS.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := filepath.Base(match)
			if _, err := tmpl.New(name).Parse(string(content)); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return tmpl, nil
}

// NewRouter wires the handlers, middleware and static files into a chi router.
// static may be nil.
func NewRouter(h *Handlers, logger *log.Logger, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	if static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	// Page routes
	r.Get("/", h.Home)

	// Task API routes
	r.Get("/api/tasks", h.ListTasks)
	r.Post("/api/tasks", h.CreateTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
	r.Post("/api/tasks/{id}/delete", h.DeleteTask)
	r.Post("/api/tasks/{id}/toggle", h.ToggleTask)

	// Diagnostics
	r.Get("/api/journal", h.Journal)

	return r
}
