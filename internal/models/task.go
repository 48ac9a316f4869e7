package models

import (
	"strings"
	"time"
)

// Priority is the urgency level of a task. It only drives display styling.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the valid priorities in the order the form offers them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the fixed priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single to-do item.
type Task struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Priority  Priority  `json:"priority"`
	Important bool      `json:"isImportant"`
	Completed bool      `json:"isCompleted"`
	CreatedAt time.Time `json:"date"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return NewInvalidInputError("name", t.Name, "name is required")
	}

	if !t.Priority.Valid() {
		return NewInvalidInputError("priority", string(t.Priority), "priority must be 'Low', 'Medium', or 'High'")
	}

	return nil
}
