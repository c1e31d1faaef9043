package rules

import "regexp"

const (
	CategoryCalming     = "calming"
	CategoryTaskParsing = "task_parsing"
	CategoryEducation   = "education"
	CategoryCoping      = "coping"
)

// Categories lists the categories reported by CategoryCounts even when empty.
var Categories = []string{CategoryCalming, CategoryTaskParsing, CategoryEducation, CategoryCoping}

const (
	ActionSafetyNet   = "safety_net"
	SafetyNetPriority = 100
)

const safetyNetResponse = "I'm not a doctor, but please reach out to a helpline if you need immediate support:\n\n" +
	"🇮🇳 India: AASRA - 91-22-27546669\n" +
	"🇺🇸 USA: 988 Suicide & Crisis Lifeline\n" +
	"🇬🇧 UK: Samaritans - 116 123\n\n" +
	"You're not alone. Let's focus on what I can help with now. What's one small thing we can tackle together? 💙"

var safetyKeywords = []string{
	"hopeless", "give up", "end it all", "suicide", "kill myself",
	"hurt myself", "self-harm", "want to die", "no point",
}

// Each match adds one to the task count; the patterns overlap on ", and ".
var taskSeparators = []*regexp.Regexp{
	regexp.MustCompile(`,\s*(?:and\s+)?`),
	regexp.MustCompile(`\s+and\s+`),
	regexp.MustCompile(`\n`),
	regexp.MustCompile(`;\s*`),
}

var obligationPhrases = []string{"need to", "have to", "must", "should", "got to", "gotta"}
