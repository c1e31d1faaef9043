package executive

import (
	"regexp"
	"time"
)

const (
	StateNeutral State = "neutral"

	// Readiness
	StateOverwhelmed State = "overwhelmed"
	StateFocus       State = "focus"
	StatePraise      State = "praise"
	StateLight       State = "light"
	StateBreak       State = "break"
	StateHint        State = "hint"
	StateTeach       State = "teach"
	StateSupport     State = "support"

	// Time and focus
	StateForceQuit State = "force_quit"
	StateLowLoad   State = "low_cog"
	StateBreakSoon State = "break_opt"
	StateNight     State = "night"
	StateMorning   State = "morning"

	// Learning
	StateReteach    State = "reteach"
	StateStrong     State = "strong"
	StateExamUrgent State = "exam_urgent"
	StateMnemonic   State = "mnemonic"
	StateExample    State = "example"

	// Psychology
	StateProgress  State = "prog_sum"
	StateRescope   State = "re-scope"
	StateNormalize State = "normalize"
	StateFirewall  State = "firewall"

	// System
	StateSimple         State = "simple"
	StateOnboard        State = "onboard"
	StateMock           State = "mock"
	StateChangeStrategy State = "change_strategy"
	StateAccelerate     State = "accelerate"

	// Preferences
	StateExplain  State = "explain_logic"
	StateVisual   State = "visual"
	StateBeginner State = "beginner"
	StateAdvanced State = "advanced"
)

var instructions = map[State]string{
	StateOverwhelmed: "Fatigue is high. Lower task difficulty and keep instructions minimal.",
	StateFocus:       "Fatigue is low. High-focus tasks are fine.",
	StatePraise:      "Three tasks done in a row. Give a short word of encouragement.",
	StateLight:       "Two tasks skipped in a row. Switch to lighter content now.",
	StateBreak:       "Stress is high. Recommend a short break.",
	StateHint:        "Same mistake twice. Give a hint, not the answer.",
	StateTeach:       "Same mistake three times. Give a full, direct explanation.",
	StateSupport:     "Help was requested. Stop evaluating and give direct guidance only.",

	StateForceQuit: "Session passed 90 minutes. Enforce a cooldown and block heavy tasks.",
	StateLowLoad:   "Session passed 45 minutes. Cut cognitive load and use short lines.",
	StateBreakSoon: "Session passed 25 minutes. Suggest a 5 minute break.",
	StateNight:     "Late-night session. Keep intensity minimal and skip analysis.",
	StateMorning:   "Morning session. Favor memory-heavy topics.",

	StateReteach:    "Accuracy is below 50. Re-teach the fundamentals.",
	StateStrong:     "Accuracy is high. Treat this topic as a strength.",
	StateExamUrgent: "Exam is close. No new topics, revision only.",
	StateMnemonic:   "Formulas are a struggle. Offer memory aids.",
	StateExample:    "Theory is a struggle. Use concrete examples.",

	StateProgress:  "Motivation is low. Summarize the progress made so far.",
	StateRescope:   "User is overwhelmed. Shrink the scope immediately.",
	StateNormalize: "User is anxious. Normalize the feeling and give one grounding step.",
	StateFirewall:  "Signs of burnout. Enforce rest and lock heavy tasks.",

	StateSimple:         "User is unsure. Pick the simplest path for them.",
	StateOnboard:        "User asked for a reset. Restart onboarding.",
	StateMock:           "Syllabus is complete. Switch to mock tests.",
	StateChangeStrategy: "Progress has plateaued. Change strategy and try a new learning format.",
	StateAccelerate:     "Progress is fast. Speed up the roadmap and unlock advanced content.",

	StateExplain:  "User asked why. Explain the reasoning behind the suggestion.",
	StateVisual:   "User prefers visuals. Use arrows and simple ASCII structure.",
	StateBeginner: "Beginner mode. One step at a time, no chained suggestions.",
	StateAdvanced: "Advanced mode. Compound steps and dense information are fine.",
}

// Instruction returns the reply instruction for a state, or "" for neutral and unknown states.
func Instruction(s State) string {
	return instructions[s]
}

const (
	defaultMotivation = 5
	defaultAccuracy   = 80

	highFatigue    = 7
	lowFatigue     = 3
	highStress     = 7
	lowMotivation  = 3
	praiseStreak   = 3
	lightSkips     = 2
	hintMistakes   = 2
	teachMistakes  = 3
	lowAccuracy    = 50
	strongAccuracy = 80
	maxReading     = 10
	maxAccuracy    = 100
)

const (
	forceQuitAfter = 90 * time.Minute
	lowLoadAfter   = 45 * time.Minute
	breakAfter     = 25 * time.Minute
)

const (
	DefaultSessionTTL  = 2 * time.Hour
	DefaultMaxSessions = 1000
)

var (
	fatigueReading    = regexp.MustCompile(`fatigue\s*[:=]?\s*(\d+)`)
	stressReading     = regexp.MustCompile(`stress\s*[:=]?\s*(\d+)`)
	motivationReading = regexp.MustCompile(`motivation\s*[:=]?\s*(\d+)`)
	accuracyReading   = regexp.MustCompile(`accuracy\s*[:=]?\s*(\d+)`)
)

// Phrase lists are matched as substrings of the lowercased message.
var (
	donePhrases     = []string{"done", "checked", "got it"}
	skipPhrases     = []string{"skip", "cant", "can't", "wont", "won't"}
	mistakePhrases  = []string{"mistake", "wrong"}
	examPhrases     = []string{"exam in 2 days", "exam soon", "test monday", "exam tomorrow"}
	rescopePhrases  = []string{"overwhelmed", "cant do this", "can't do this"}
	anxietyPhrases  = []string{"anxious", "scared"}
	burnoutPhrases  = []string{"hating this", "burnout"}
	plateauPhrases  = []string{"stuck at", "not improving"}
	fastPhrases     = []string{"improving fast", "too easy"}
	visualPhrases   = []string{"diagram", "show me"}
	syllabusPhrases = []string{"syllabus complete", "finished the syllabus"}
	beginnerPhrases = []string{"beginner mode"}
	advancedPhrases = []string{"advanced mode"}
)

const (
	helpPhrase    = "help"
	unsurePhrase  = "not sure"
	resetPhrase   = "reset"
	formulaPhrase = "formula"
	theoryPhrase  = "theory"
	explainPrefix = "why"
	topicCutset   = ".,!?;:\"'()"
)
