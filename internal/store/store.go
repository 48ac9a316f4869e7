package store

import (
	"taskwidget/internal/models"
)

// Store defines the task operations the HTTP layer depends on.
type Store interface {
	Add(name string, priority models.Priority, important, completed bool) (models.Task, error)
	Delete(id int64) bool
	ToggleCompleted(id int64) bool
	Snapshot() []models.Task
}

// Sink receives one diagnostic record after every mutation.
type Sink interface {
	Write(rec Record) error
}

var _ Store = (*TaskStore)(nil)
