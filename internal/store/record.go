package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"taskwidget/internal/models"
)

// Op names the mutation that produced a record.
type Op string

const (
	OpAdd    Op = "add"
	OpDelete Op = "delete"
	OpToggle Op = "toggle"
)

// Record is the diagnostic view of the store right after one mutation.
// It is meant for inspection, not for rebuilding the store.
type Record struct {
	Seq    uint64        `json:"seq"`
	Op     Op            `json:"op"`
	TaskID int64         `json:"id"`
	At     time.Time     `json:"at"`
	Tasks  []models.Task `json:"tasks"`
}

// TasksJSON encodes the task list as a JSON array.
func (r Record) TasksJSON() ([]byte, error) {
	tasks := r.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// LogSink writes each record to a logger as one line with the task list
// encoded as JSON.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs at info level on the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Write logs the record.
func (l *LogSink) Write(rec Record) error {
	data, err := rec.TasksJSON()
	if err != nil {
		return err
	}
	l.logger.Info("tasks", "op", rec.Op, "id", rec.TaskID, "seq", rec.Seq, "tasks", string(data))
	return nil
}
