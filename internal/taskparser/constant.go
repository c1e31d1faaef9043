package taskparser

import (
	"regexp"

	"lockfocus-assistant/internal/model"
)

// minTaskLength is the raw candidate length (in runes) a task must exceed.
const minTaskLength = 3

// segmentSeparator splits input on commas, semicolons, the word "and" and newlines.
var segmentSeparator = regexp.MustCompile(`(?i)[,;]|\s+and\s+|\n`)

// taskIndicators are tried in order; the first match wins and group 1 is the task text.
// They match anywhere in a segment, so "forgot to call mom" yields "call mom".
var taskIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:need to|have to|must|should|got to|gotta)\s+(.+)`),
	regexp.MustCompile(`(?i)(?:i'm|i’m|i am)\s+(?:going to|gonna)\s+(.+)`),
	regexp.MustCompile(`(?i)(?:plan to|planning to)\s+(.+)`),
}

// leadInPrefixes are stripped, in order, from the start of a task's text.
var leadInPrefixes = compilePrefixes(
	"need to",
	"have to",
	"must",
	"should",
	"got to",
	"gotta",
	"i'm going to",
	"i’m going to",
	"i am going to",
	"i'm gonna",
	"i’m gonna",
	"i am gonna",
	"going to",
	"gonna",
	"plan to",
	"planning to",
)

// intentPhrases trigger the whole-input fallback when no segment qualified.
var intentPhrases = []string{
	"need to", "have to", "must", "should", "got to", "gotta",
	"going to", "gonna", "plan to", "want to", "trying to",
}

var actionVerbs = map[string]struct{}{
	"do": {}, "make": {}, "write": {}, "finish": {}, "complete": {}, "start": {}, "begin": {},
	"create": {}, "send": {}, "buy": {}, "get": {}, "take": {}, "go": {}, "call": {}, "email": {},
	"study": {}, "read": {}, "clean": {}, "organize": {}, "prepare": {}, "submit": {},
	"upload": {}, "pay": {}, "schedule": {}, "wash": {}, "cook": {}, "bring": {}, "attend": {},
	"watch": {}, "listen": {}, "practice": {}, "revise": {}, "learn": {},
}

type timeTier struct {
	priority model.Priority
	patterns []*regexp.Regexp
}

type keywordTier struct {
	priority model.Priority
	keywords []string
}

// timeIndicators are checked before domain keywords, urgent first.
var timeIndicators = []timeTier{
	{model.PriorityUrgent, compileWords(
		`now`, `asap`, `immediately`, `right now`, `emergency`,
	)},
	{model.PriorityHigh, compileWords(
		`today`, `tonight`, `tomorrow`, `this morning`, `this afternoon`, `this evening`,
		`in \d+ hours?`, `in \d+ min(?:s|utes?)?`,
	)},
	{model.PriorityMedium, compileWords(
		`this week`, `next week`, `soon`, `upcoming`,
	)},
	{model.PriorityLow, compileWords(
		`someday`, `eventually`, `maybe`, `later`,
	)},
}

// domainKeywords match as lowercase substrings so plurals and stems still hit.
var domainKeywords = []keywordTier{
	{model.PriorityUrgent, []string{
		"meds", "medication", "pills", "prescription", "emergency", "asap", "right now", "immediately",
	}},
	{model.PriorityHigh, []string{
		"exam", "test", "quiz", "deadline", "due", "tomorrow", "today", "tonight", "submit", "send",
		"upload", "appointment", "meeting", "interview", "work", "project", "assignment", "pay",
		"bill", "payment",
	}},
	{model.PriorityMedium, []string{
		"email", "message", "text", "call", "shopping", "groceries", "buy", "prepare", "pack",
		"study", "read", "review", "exercise", "workout", "finish", "complete",
	}},
	{model.PriorityLow, []string{
		"clean", "laundry", "dishes", "organize", "hobby", "fun", "relax", "someday", "eventually",
		"maybe", "fix", "repair",
	}},
}

// Display strings for FormatTasksForDisplay.
const (
	displayHeader = "Here's your task list organized by priority:\n\n"
	displayFooter = "Let's tackle the urgent ones first! Which one should we start with?"
)

var priorityEmoji = map[model.Priority]string{
	model.PriorityUrgent: "🚨",
	model.PriorityHigh:   "🔴",
	model.PriorityMedium: "🟡",
	model.PriorityLow:    "🟢",
}

func compileWords(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(`(?i)\b` + expr + `\b`)
	}
	return out
}

func compilePrefixes(phrases ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		out[i] = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(phrase) + `\s+`)
	}
	return out
}
