package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"lockfocus-assistant/pkg/log"
)

// Config configures the shared HTTP middleware.
type Config struct {
	AllowedOrigins   []string
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	cors    *cors.Cors
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, cfg Config) Middleware {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mw := Middleware{
		l: l,
		cors: cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
		}),
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
