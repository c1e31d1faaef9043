package taskparser

import (
	"slices"
	"strings"

	"lockfocus-assistant/internal/model"
)

// DeterminePriority classifies text. Time indicators are checked first, then domain
// keywords, each tier urgent to low; the first hit wins. Defaults to medium.
func DeterminePriority(text string) model.Priority {
	for _, tier := range timeIndicators {
		for _, re := range tier.patterns {
			if re.MatchString(text) {
				return tier.priority
			}
		}
	}

	lower := strings.ToLower(text)
	for _, tier := range domainKeywords {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.priority
			}
		}
	}

	return model.PriorityMedium
}

// CategorizeTasks partitions tasks into the four priority buckets. Every bucket is
// non-nil. Tasks carrying a priority outside the four levels are dropped.
func CategorizeTasks(tasks []model.Task) model.CategorizedTasks {
	c := model.CategorizedTasks{
		Urgent: []model.Task{},
		High:   []model.Task{},
		Medium: []model.Task{},
		Low:    []model.Task{},
	}
	for _, t := range tasks {
		switch t.Priority {
		case model.PriorityUrgent:
			c.Urgent = append(c.Urgent, t)
		case model.PriorityHigh:
			c.High = append(c.High, t)
		case model.PriorityMedium:
			c.Medium = append(c.Medium, t)
		case model.PriorityLow:
			c.Low = append(c.Low, t)
		}
	}
	return c
}

// SortByPriority returns a copy of tasks ordered urgent first, stable within a level.
func SortByPriority(tasks []model.Task) []model.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b model.Task) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})
	return sorted
}
