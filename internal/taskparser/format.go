package taskparser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"lockfocus-assistant/internal/model"
)

// CleanTaskText strips a leading lead-in phrase, trims, capitalizes the first letter
// and drops one trailing comma or semicolon.
func CleanTaskText(text string) string {
	cleaned := stripLeadIns(strings.TrimSpace(text))
	if cleaned == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(cleaned)
	cleaned = string(unicode.ToUpper(r)) + cleaned[size:]

	if strings.HasSuffix(cleaned, ",") || strings.HasSuffix(cleaned, ";") {
		cleaned = strings.TrimSpace(cleaned[:len(cleaned)-1])
	}
	return cleaned
}

// stripLeadIns removes lead-in phrases until none is left at the start of s,
// so "must need to x" and "need to x" both clean to "x".
func stripLeadIns(s string) string {
	for {
		before := s
		for _, prefix := range leadInPrefixes {
			s = strings.TrimSpace(prefix.ReplaceAllString(s, ""))
		}
		if s == before {
			return s
		}
	}
}

// SeemsLikeTask reports whether text contains any intent phrase such as "want to".
func SeemsLikeTask(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range intentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// FormatTasksForDisplay renders tasks grouped by priority as a Markdown block.
// It returns "" for an empty list.
func FormatTasksForDisplay(tasks []model.Task) string {
	if len(tasks) == 0 {
		return ""
	}

	categorized := CategorizeTasks(tasks)

	var sb strings.Builder
	sb.WriteString(displayHeader)
	for _, p := range model.Priorities {
		bucket := categorized.Bucket(p)
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s **%s**\n", priorityEmoji[p], strings.ToUpper(p.String()))
		for i, t := range bucket {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, t.Text)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(displayFooter)

	return sb.String()
}
