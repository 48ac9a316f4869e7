package render

import (
	"testing"
	"time"

	"taskwidget/internal/models"
)

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		priority models.Priority
		expected string
	}{
		{models.PriorityHigh, "#ffe5e5"},
		{models.PriorityMedium, "#fff8e1"},
		{models.PriorityLow, "#e6ffed"},
		{"Urgent", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := BackgroundColor(tt.priority); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRow_ImportantAndCompletedStyling(t *testing.T) {
	tests := []struct {
		name           string
		task           models.Task
		nameColor      string
		textDecoration string
		toggleLabel    string
		importantLabel string
		completedLabel string
	}{
		{
			name:           "plain task",
			task:           models.Task{},
			nameColor:      "",
			textDecoration: "none",
			toggleLabel:    "Mark Complete",
			importantLabel: "Important: No",
			completedLabel: "Completed: No",
		},
		{
			name:           "important task",
			task:           models.Task{Important: true},
			nameColor:      "red",
			textDecoration: "none",
			toggleLabel:    "Mark Complete",
			importantLabel: "Important: Yes",
			completedLabel: "Completed: No",
		},
		{
			name:           "completed task",
			task:           models.Task{Completed: true},
			nameColor:      "",
			textDecoration: "line-through",
			toggleLabel:    "Mark Incomplete",
			importantLabel: "Important: No",
			completedLabel: "Completed: Yes",
		},
	}

	r := New("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := r.Row(tt.task)
			if row.NameColor != tt.nameColor {
				t.Errorf("name color: expected %q, got %q", tt.nameColor, row.NameColor)
			}
			if row.TextDecoration != tt.textDecoration {
				t.Errorf("text decoration: expected %q, got %q", tt.textDecoration, row.TextDecoration)
			}
			if row.ToggleLabel != tt.toggleLabel {
				t.Errorf("toggle label: expected %q, got %q", tt.toggleLabel, row.ToggleLabel)
			}
			if row.ImportantLabel != tt.importantLabel {
				t.Errorf("important label: expected %q, got %q", tt.importantLabel, row.ImportantLabel)
			}
			if row.CompletedLabel != tt.completedLabel {
				t.Errorf("completed label: expected %q, got %q", tt.completedLabel, row.CompletedLabel)
			}
		})
	}
}

func TestRows_KeepsOrderAndFormatsLabels(t *testing.T) {
	created := time.Date(2026, 3, 4, 17, 5, 6, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, Name: "Buy milk", Priority: models.PriorityHigh, CreatedAt: created},
		{ID: 2, Name: "Call bank", Priority: models.PriorityLow, CreatedAt: created},
	}

	rows := New("").Rows(tasks)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != 1 || rows[1].ID != 2 {
		t.Errorf("expected ids [1 2], got [%d %d]", rows[0].ID, rows[1].ID)
	}
	if rows[0].PriorityLabel != "[High priority]" {
		t.Errorf("unexpected priority label %q", rows[0].PriorityLabel)
	}
	if rows[0].AddedLabel != "Added: 3/4/2026, 5:05:06 PM" {
		t.Errorf("unexpected added label %q", rows[0].AddedLabel)
	}
}

func TestRows_CustomLayout(t *testing.T) {
	created := time.Date(2026, 3, 4, 17, 5, 6, 0, time.UTC)

	rows := New("2006-01-02").Rows([]models.Task{{CreatedAt: created}})

	if rows[0].AddedLabel != "Added: 2026-03-04" {
		t.Errorf("unexpected added label %q", rows[0].AddedLabel)
	}
}

func TestRows_EmptySnapshot(t *testing.T) {
	rows := New("").Rows(nil)
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil rows, got %#v", rows)
	}
}
