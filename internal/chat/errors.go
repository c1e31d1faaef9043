package chat

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is required")
	ErrMemoryUnavailable = errors.New("memory store unavailable")
)
