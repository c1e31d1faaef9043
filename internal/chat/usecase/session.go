package usecase

import (
	"context"
	"slices"

	"lockfocus-assistant/internal/memory"
	"lockfocus-assistant/internal/model"
)

// History returns a copy of the stored turns of a session.
func (uc *implUseCase) History(ctx context.Context, sessionID string) []model.Message {
	history, ok := uc.sessions.Get(sessionKey(sessionID))
	if !ok {
		return []model.Message{}
	}
	return slices.Clone(history)
}

// ClearSession drops the stored history, readings and memory of a session.
func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) {
	sessionID = sessionKey(sessionID)
	uc.sessions.Remove(sessionID)
	uc.executive.Reset(sessionID)
	if uc.memory != nil {
		if err := uc.memory.Clear(ctx, sessionID); err != nil {
			uc.l.Warnf(ctx, "chat.usecase.ClearSession: %v", err)
		}
	}
	uc.l.Infof(ctx, "chat.usecase.ClearSession: cleared session %s", sessionID)
}

// appendHistory adds turns to a session, keeping only the newest historyLimit messages.
// User turns are stored with emotional venting redacted.
func (uc *implUseCase) appendHistory(sessionID string, msgs ...model.Message) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	history, _ := uc.sessions.Get(sessionID)
	history = slices.Clone(history)
	for _, m := range msgs {
		if m.Role == model.RoleUser {
			m.Content = memory.Redact(m.Content)
		}
		history = append(history, m)
	}
	if len(history) > uc.historyLimit {
		history = history[len(history)-uc.historyLimit:]
	}
	uc.sessions.Add(sessionID, history)
}
