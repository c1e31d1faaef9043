package chat

import (
	"context"

	"lockfocus-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one user message: safety net, rule matching, task extraction and reply generation.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ClearSession drops the stored history, readings and memory of a session.
	ClearSession(ctx context.Context, sessionID string)

	// Memory returns the readings, patterns and tasks held for a session.
	Memory(ctx context.Context, sessionID string) (MemoryOutput, error)

	// History returns a copy of the stored turns of a session.
	History(ctx context.Context, sessionID string) []model.Message

	// Rules summarizes the loaded rule set.
	Rules(ctx context.Context) RulesOutput

	// Available reports whether the reply generator is configured.
	Available(ctx context.Context) bool

	// Status reports the model in use and which optional backends are wired.
	Status(ctx context.Context) StatusOutput
}
