// Package executive tracks a per-session picture of the user's readiness and
// picks a support strategy for each message.
//
// Every message first updates the session's readings (fatigue, stress and
// motivation figures the user reports, done/skip streaks, mistakes per topic),
// then the check groups run in a fixed order: readiness, time and focus,
// learning, psychology, system, preferences. The first check that fires
// decides the state. A message that fires nothing is neutral.
package executive

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Options tunes session retention. Zero fields use the package defaults.
type Options struct {
	SessionTTL  time.Duration
	MaxSessions int

	// Now overrides the clock.
	Now func() time.Time
}

// Analyzer keeps one session per id and is safe for concurrent use.
type Analyzer struct {
	// mu serializes updates to a session's readings.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	now      func() time.Time
}

// New creates an Analyzer.
func New(opts Options) *Analyzer {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Analyzer{
		sessions: expirable.NewLRU[string, *session](opts.MaxSessions, nil, opts.SessionTTL),
		now:      opts.Now,
	}
}

// Analyze records message against the session and returns the strategy for it.
func (a *Analyzer) Analyze(sessionID, message string) Analysis {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	s, ok := a.sessions.Get(sessionID)
	if !ok {
		s = newSession(now)
	}
	// Add refreshes the expiry of an active session.
	a.sessions.Add(sessionID, s)

	text := strings.ToLower(strings.TrimSpace(message))
	s.update(text, now)

	for _, check := range []func(string, time.Time) State{
		s.checkReadiness,
		s.checkTimeFocus,
		s.checkLearning,
		s.checkPsychology,
		s.checkSystem,
		s.checkPreferences,
	} {
		if state := check(text, now); state != StateNeutral {
			return Analysis{State: state, Instruction: Instruction(state)}
		}
	}
	return Analysis{State: StateNeutral}
}

// Snapshot returns a copy of the session's readings.
func (a *Analyzer) Snapshot(sessionID string) (Snapshot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions.Peek(sessionID)
	if !ok {
		return Snapshot{}, false
	}
	return s.snapshot(), true
}

// Reset forgets a session; its next message starts a new one.
func (a *Analyzer) Reset(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions.Remove(sessionID)
}
