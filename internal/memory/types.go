package memory

import (
	"time"

	"lockfocus-assistant/internal/model"
)

// Pattern is a stable observation about a session, keyed by type (e.g. "trigger_overwhelmed").
type Pattern struct {
	Type       string
	Data       string
	Confidence float64
	UpdatedAt  time.Time
}

// Task status values.
const (
	TaskStatusActive    = "active"
	TaskStatusCompleted = "completed"
)

// Task is a task synced from a chat message.
type Task struct {
	ID        string
	Text      string
	Priority  model.Priority
	Status    string
	CreatedAt time.Time
}

// Profile is everything remembered about one session.
type Profile struct {
	Patterns []Pattern
	Tasks    []Task
}
