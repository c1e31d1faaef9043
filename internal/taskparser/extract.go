package taskparser

import (
	"strings"
	"unicode/utf8"

	"lockfocus-assistant/internal/model"
)

// ExtractTasks returns the tasks found in input, in the order their segments appear.
// It never fails; input with nothing actionable yields an empty, non-nil slice.
func (p *Parser) ExtractTasks(input string) []model.Task {
	tasks := make([]model.Task, 0)

	for _, segment := range splitSegments(input) {
		candidate, ok := detectTask(segment)
		if !ok || utf8.RuneCountInString(candidate) <= minTaskLength {
			continue
		}
		if t, ok := p.newTask(candidate); ok {
			tasks = append(tasks, t)
		}
	}

	if len(tasks) == 0 && SeemsLikeTask(input) {
		if t, ok := p.newTask(input); ok {
			tasks = append(tasks, t)
		}
	}

	return tasks
}

func (p *Parser) newTask(raw string) (model.Task, bool) {
	text := CleanTaskText(raw)
	if text == "" {
		return model.Task{}, false
	}
	return model.Task{
		ID:        p.newID(),
		Text:      text,
		Priority:  DeterminePriority(raw),
		Completed: false,
	}, true
}

// splitSegments splits on the separators and drops blank pieces.
func splitSegments(input string) []string {
	parts := segmentSeparator.Split(input, -1)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// detectTask reports whether segment is a task and returns the candidate text.
// Precedence: explicit lead-in, then action verb, then priority keyword.
func detectTask(segment string) (string, bool) {
	for _, indicator := range taskIndicators {
		if m := indicator.FindStringSubmatch(segment); m != nil {
			if m[1] != "" {
				return m[1], true
			}
			return segment, true
		}
	}

	for _, word := range strings.Fields(strings.ToLower(segment)) {
		if _, ok := actionVerbs[word]; ok {
			return segment, true
		}
	}

	if containsPriorityKeyword(segment) {
		return segment, true
	}

	return "", false
}

func containsPriorityKeyword(segment string) bool {
	lower := strings.ToLower(segment)
	for _, tier := range domainKeywords {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	for _, tier := range timeIndicators {
		for _, re := range tier.patterns {
			if re.MatchString(segment) {
				return true
			}
		}
	}
	return false
}
