package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"taskwidget/internal/models"
	"taskwidget/internal/render"
	"taskwidget/internal/store"
)

// JournalReader lists recent diagnostic records.
type JournalReader interface {
	Recent(ctx context.Context, limit int) ([]store.JournalEntry, error)
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store           store.Store
	journal         JournalReader
	templates       *template.Template
	renderer        *render.Renderer
	logger          *log.Logger
	defaultPriority models.Priority
}

// Options holds the optional collaborators of Handlers.
type Options struct {
	Journal         JournalReader
	Renderer        *render.Renderer
	Logger          *log.Logger
	DefaultPriority models.Priority
}

// New creates a new Handlers instance. A nil template set makes page and
// partial responses empty, which is enough for API tests.
func New(s store.Store, tmpl *template.Template, opts Options) *Handlers {
	h := &Handlers{
		store:           s,
		journal:         opts.Journal,
		templates:       tmpl,
		renderer:        opts.Renderer,
		logger:          opts.Logger,
		defaultPriority: opts.DefaultPriority,
	}
	if h.renderer == nil {
		h.renderer = render.New("")
	}
	if h.logger == nil {
		h.logger = log.Default()
	}
	if h.defaultPriority == "" {
		h.defaultPriority = models.PriorityMedium
	}
	return h
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// parseCheckbox reports whether a form checkbox value is set.
func parseCheckbox(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func (h *Handlers) respondServerError(w http.ResponseWriter, err error) {
	h.logger.Error("internal server error", "err", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handlers) respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", "err", err)
	}
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.respondServerError(w, err)
	}
}

// renderList renders the task list partial from a fresh snapshot.
func (h *Handlers) renderList(w http.ResponseWriter) {
	h.render(w, "task_list.html", h.renderer.Rows(h.store.Snapshot()))
}

// isPartialRequest reports whether the page script sent the request and
// will swap the list partial in place.
func isPartialRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// respondList answers a mutation. Plain form posts are redirected back to
// the page; script requests get the list partial.
func (h *Handlers) respondList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && !isPartialRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderList(w)
}
