package repository

import "lockfocus-assistant/internal/model"

// UpsertPatternOptions holds parameters for storing a pattern.
// An existing pattern with the same session and type is replaced.
type UpsertPatternOptions struct {
	SessionID  string
	Type       string
	Data       string
	Confidence float64
}

// SyncTasksOptions holds the session's current task list.
type SyncTasksOptions struct {
	SessionID string
	Tasks     []model.Task
}
