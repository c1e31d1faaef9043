package gemini

import (
	"context"
	"errors"
)

// IGemini is the subset of the Gemini client the rest of the service depends on.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether an API key is configured.
	Available() bool

	// Model returns the model being used.
	Model() string
}

var (
	ErrNotConfigured = errors.New("gemini: api key not configured")
	ErrEmptyResponse = errors.New("gemini: empty response")
)

var _ IGemini = (*Client)(nil)
