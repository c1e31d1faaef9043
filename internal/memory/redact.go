// Package memory holds what the assistant remembers about a session: observed
// patterns and the tasks last synced from chat.
package memory

import "regexp"

// RedactedEmotion replaces emotional venting in stored text.
const RedactedEmotion = "[Emotional expression removed for privacy]"

// emotionPatterns run up to the end of the sentence.
var emotionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi feel [^.!?\n]*`),
	regexp.MustCompile(`(?i)\bi(?:'m|’m| am) so (?:angry|sad|happy|scared|frustrated)\b`),
	regexp.MustCompile(`(?i)\bi hate [^.!?\n]*`),
	regexp.MustCompile(`(?i)\bi love [^.!?\n]*`),
}

// Redact strips raw emotional expressions from text, keeping the rest.
func Redact(text string) string {
	for _, re := range emotionPatterns {
		text = re.ReplaceAllString(text, RedactedEmotion)
	}
	return text
}
