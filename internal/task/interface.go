package task

import "context"

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Parse extracts prioritized tasks from a free-text message.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
