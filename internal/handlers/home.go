package handlers

import (
	"net/http"

	"taskwidget/internal/models"
	"taskwidget/internal/render"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Title           string
	Priorities      []models.Priority
	DefaultPriority models.Priority
	Tasks           []render.TaskView
}

// Home renders the page with the add form and the current task list.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := HomeData{
		Title:           "Task Manager",
		Priorities:      models.Priorities,
		DefaultPriority: h.defaultPriority,
		Tasks:           h.renderer.Rows(h.store.Snapshot()),
	}

	h.render(w, "index.html", data)
}

// Journal returns the most recent diagnostic records as JSON.
func (h *Handlers) Journal(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		respondError(w, http.StatusNotFound, "journal disabled")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.journal.Recent(r.Context(), limit)
	if err != nil {
		h.respondServerError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}
