package model

// Priority is a task urgency bucket.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every level in descending urgency. Iteration order is load-bearing.
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns 0 for urgent through 3 for low, and len(Priorities) for unknown values.
func (p Priority) Rank() int {
	for i, level := range Priorities {
		if level == p {
			return i
		}
	}
	return len(Priorities)
}

// IsValid reports whether p is one of the four declared levels.
func (p Priority) IsValid() bool {
	return p.Rank() < len(Priorities)
}

func (p Priority) String() string {
	return string(p)
}
