package usecase

import (
	"context"
	"strings"

	"lockfocus-assistant/internal/chat"
	"lockfocus-assistant/internal/executive"
	"lockfocus-assistant/internal/memory"
	memoryRepo "lockfocus-assistant/internal/memory/repository"
	"lockfocus-assistant/internal/model"
)

// strategy combines the current analysis with the triggers remembered for the session.
func (uc *implUseCase) strategy(ctx context.Context, sessionID string, a executive.Analysis) string {
	var parts []string
	if !a.IsNeutral() {
		parts = append(parts, a.Instruction)
	}
	if triggers := uc.knownTriggers(ctx, sessionID); len(triggers) > 0 {
		parts = append(parts, knownTriggersLabel+strings.Join(triggers, ", "))
	}
	return strings.Join(parts, "\n")
}

// knownTriggers lists the states previously recorded for the session.
func (uc *implUseCase) knownTriggers(ctx context.Context, sessionID string) []string {
	if uc.memory == nil {
		return nil
	}
	patterns, err := uc.memory.ListPatterns(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.knownTriggers: %v", err)
		return nil
	}

	var triggers []string
	for _, p := range patterns {
		if state, ok := strings.CutPrefix(p.Type, triggerPatternPrefix); ok {
			triggers = append(triggers, state)
		}
	}
	return triggers
}

// rememberPattern records a non-neutral state with the redacted message that caused it.
func (uc *implUseCase) rememberPattern(ctx context.Context, sessionID string, a executive.Analysis, message string) {
	if uc.memory == nil || a.IsNeutral() {
		return
	}
	err := uc.memory.UpsertPattern(ctx, memoryRepo.UpsertPatternOptions{
		SessionID:  sessionID,
		Type:       triggerPatternPrefix + string(a.State),
		Data:       memory.Redact(message),
		Confidence: triggerConfidence,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.rememberPattern: %v", err)
	}
}

// syncTasks stores the tasks extracted from the latest message.
func (uc *implUseCase) syncTasks(ctx context.Context, sessionID string, tasks []model.Task) {
	if uc.memory == nil || len(tasks) == 0 {
		return
	}
	if err := uc.memory.SyncTasks(ctx, memoryRepo.SyncTasksOptions{SessionID: sessionID, Tasks: tasks}); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.syncTasks: %v", err)
	}
}

// Memory returns the readings, patterns and tasks held for a session.
func (uc *implUseCase) Memory(ctx context.Context, sessionID string) (chat.MemoryOutput, error) {
	sessionID = sessionKey(sessionID)
	readings, tracked := uc.executive.Snapshot(sessionID)

	out := chat.MemoryOutput{
		SessionID: sessionID,
		Tracked:   tracked,
		Readings:  readings,
		Patterns:  []memory.Pattern{},
		Tasks:     []memory.Task{},
	}
	if uc.memory == nil {
		return out, nil
	}

	patterns, err := uc.memory.ListPatterns(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Memory.ListPatterns: %v", err)
		return chat.MemoryOutput{}, chat.ErrMemoryUnavailable
	}
	tasks, err := uc.memory.ListTasks(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Memory.ListTasks: %v", err)
		return chat.MemoryOutput{}, chat.ErrMemoryUnavailable
	}

	out.Patterns = patterns
	out.Tasks = tasks
	return out, nil
}
