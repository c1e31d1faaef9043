package executive

import "time"

// State names the support mode picked for a message.
type State string

// Analysis is the outcome of one message: a state and the instruction that shapes the reply.
// Neutral analyses carry no instruction.
type Analysis struct {
	State       State
	Instruction string
}

// IsNeutral reports whether no strategy applies.
func (a Analysis) IsNeutral() bool {
	return a.State == StateNeutral
}

// Level is the experience mode a user picked.
type Level string

const (
	LevelUnset    Level = ""
	LevelBeginner Level = "beginner"
	LevelAdvanced Level = "advanced"
)

// Snapshot is a read-only copy of a session's readings.
type Snapshot struct {
	SessionStart     time.Time
	LastInteraction  time.Time
	Fatigue          int
	Stress           int
	Motivation       int
	Accuracy         int
	AccuracyReported bool
	TaskStreak       int
	ConsecutiveSkips int
	VisualPreference bool
	Level            Level
	SyllabusComplete bool
}

// session holds the mutable readings of one conversation.
type session struct {
	start            time.Time
	lastInteraction  time.Time
	fatigue          int
	stress           int
	motivation       int
	accuracy         int
	accuracyReported bool
	taskStreak       int
	consecutiveSkips int
	mistakes         map[string]int
	visual           bool
	level            Level
	syllabusComplete bool
}

func newSession(now time.Time) *session {
	return &session{
		start:           now,
		lastInteraction: now,
		motivation:      defaultMotivation,
		accuracy:        defaultAccuracy,
		mistakes:        make(map[string]int),
	}
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		SessionStart:     s.start,
		LastInteraction:  s.lastInteraction,
		Fatigue:          s.fatigue,
		Stress:           s.stress,
		Motivation:       s.motivation,
		Accuracy:         s.accuracy,
		AccuracyReported: s.accuracyReported,
		TaskStreak:       s.taskStreak,
		ConsecutiveSkips: s.consecutiveSkips,
		VisualPreference: s.visual,
		Level:            s.level,
		SyllabusComplete: s.syllabusComplete,
	}
}
