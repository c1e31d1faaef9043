package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// headerAPIKey carries the API key so it never appears in request URLs.
	headerAPIKey = "x-goog-api-key"

	// placeholderAPIKey is the value shipped in sample env files.
	placeholderAPIKey = "YOUR_GEMINI_API_KEY_HERE"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)
