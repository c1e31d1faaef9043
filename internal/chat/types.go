package chat

import (
	"time"

	"lockfocus-assistant/internal/executive"
	"lockfocus-assistant/internal/memory"
	"lockfocus-assistant/internal/model"
)

// --- UseCase Inputs ---

type ChatInput struct {
	Message   string
	SessionID string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response      string
	Action        string
	Tasks         []model.Task
	RuleTriggered bool
	RulePriority  int
	MentalState   executive.State
	Timestamp     time.Time
}

type RulesOutput struct {
	TotalRules int
	Categories map[string]int
}

type StatusOutput struct {
	Model         string
	Available     bool
	MemoryEnabled bool
}

// MemoryOutput is what the assistant holds about one session.
// Readings is the zero value when the session has not been seen.
type MemoryOutput struct {
	SessionID string
	Tracked   bool
	Readings  executive.Snapshot
	Patterns  []memory.Pattern
	Tasks     []memory.Task
}
