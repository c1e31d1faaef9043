package model

// Task is one actionable item extracted from a user message.
// Tasks are immutable once created.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// CategorizedTasks groups tasks by priority, preserving relative order inside each bucket.
type CategorizedTasks struct {
	Urgent []Task `json:"urgent"`
	High   []Task `json:"high"`
	Medium []Task `json:"medium"`
	Low    []Task `json:"low"`
}

// Bucket returns the tasks for priority p. Unknown priorities yield nil.
func (c CategorizedTasks) Bucket(p Priority) []Task {
	switch p {
	case PriorityUrgent:
		return c.Urgent
	case PriorityHigh:
		return c.High
	case PriorityMedium:
		return c.Medium
	case PriorityLow:
		return c.Low
	}
	return nil
}

// All concatenates the buckets in urgent, high, medium, low order.
func (c CategorizedTasks) All() []Task {
	all := make([]Task, 0, len(c.Urgent)+len(c.High)+len(c.Medium)+len(c.Low))
	for _, p := range Priorities {
		all = append(all, c.Bucket(p)...)
	}
	return all
}

// Len is the total number of tasks across all buckets.
func (c CategorizedTasks) Len() int {
	return len(c.Urgent) + len(c.High) + len(c.Medium) + len(c.Low)
}
