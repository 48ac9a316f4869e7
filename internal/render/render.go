// Package render turns a task snapshot into view rows for the templates.
// Every function here is pure: the output depends only on the tasks passed in.
package render

import (
	"fmt"

	"taskwidget/internal/models"
)

// DefaultTimeLayout matches a browser's toLocaleString output closely enough.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// TaskView holds display text and inline style values for one task row.
type TaskView struct {
	ID              int64
	Name            string
	PriorityLabel   string
	AddedLabel      string
	ImportantLabel  string
	CompletedLabel  string
	ToggleLabel     string
	BackgroundColor string
	NameColor       string
	TextDecoration  string
}

// Renderer formats snapshots using a fixed time layout.
type Renderer struct {
	TimeLayout string
}

// New creates a Renderer. An empty layout falls back to DefaultTimeLayout.
func New(timeLayout string) *Renderer {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	return &Renderer{TimeLayout: timeLayout}
}

// Rows maps each task, in order, to its view row.
func (r *Renderer) Rows(tasks []models.Task) []TaskView {
	rows := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, r.Row(t))
	}
	return rows
}

// Row maps a single task to its view row.
func (r *Renderer) Row(t models.Task) TaskView {
	return TaskView{
		ID:              t.ID,
		Name:            t.Name,
		PriorityLabel:   fmt.Sprintf("[%s priority]", t.Priority),
		AddedLabel:      "Added: " + t.CreatedAt.Format(r.TimeLayout),
		ImportantLabel:  "Important: " + yesNo(t.Important),
		CompletedLabel:  "Completed: " + yesNo(t.Completed),
		ToggleLabel:     ToggleLabel(t.Completed),
		BackgroundColor: BackgroundColor(t.Priority),
		NameColor:       NameColor(t.Important),
		TextDecoration:  TextDecoration(t.Completed),
	}
}

// BackgroundColor returns the row background for a priority.
func BackgroundColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "#ffe5e5"
	case models.PriorityMedium:
		return "#fff8e1"
	case models.PriorityLow:
		return "#e6ffed"
	default:
		return ""
	}
}

// NameColor highlights important tasks in red.
func NameColor(important bool) string {
	if important {
		return "red"
	}
	return ""
}

// TextDecoration strikes through completed tasks.
func TextDecoration(completed bool) string {
	if completed {
		return "line-through"
	}
	return "none"
}

// ToggleLabel is the text of the completion button.
func ToggleLabel(completed bool) string {
	if completed {
		return "Mark Incomplete"
	}
	return "Mark Complete"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
