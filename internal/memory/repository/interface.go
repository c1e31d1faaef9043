package repository

import (
	"context"

	"lockfocus-assistant/internal/memory"
)

// Repository is the composed interface for the memory data store.
type Repository interface {
	PatternRepository
	TaskRepository

	// Clear forgets everything stored for a session.
	Clear(ctx context.Context, sessionID string) error
}

// PatternRepository stores one pattern per session and type.
type PatternRepository interface {
	UpsertPattern(ctx context.Context, opt UpsertPatternOptions) error
	ListPatterns(ctx context.Context, sessionID string) ([]memory.Pattern, error)
}

// TaskRepository stores the tasks synced from chat.
type TaskRepository interface {
	// SyncTasks replaces a session's unfinished tasks; completed tasks are kept.
	SyncTasks(ctx context.Context, opt SyncTasksOptions) error
	ListTasks(ctx context.Context, sessionID string) ([]memory.Task, error)
}
