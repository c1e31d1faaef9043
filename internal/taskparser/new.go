// Package taskparser extracts prioritized tasks from free-text messages.
//
// The parser is a single-pass, rule-based classifier: input is split into
// segments, each segment is tested for an explicit lead-in ("need to ..."),
// an action verb, or a priority keyword, and every detected task is assigned
// one of four priority levels. All keyword tables are immutable, so a Parser
// may be shared between goroutines.
package taskparser

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Parser extracts tasks. The zero value is not usable; call New.
type Parser struct {
	newID func() string
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDGenerator overrides how task IDs are generated.
func WithIDGenerator(gen func() string) Option {
	return func(p *Parser) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{newID: generateTaskID}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// generateTaskID returns task_<unix millis>_<12 random hex chars>.
func generateTaskID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("task_%d_%s", time.Now().UnixMilli(), random)
}
