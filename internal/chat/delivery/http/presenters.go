package http

import (
	"time"

	"lockfocus-assistant/internal/chat"
	"lockfocus-assistant/internal/executive"
	"lockfocus-assistant/internal/model"
)

const (
	statusOK          = "ok"
	statusOnline      = "online"
	statusCleared     = "cleared"
	geminiConnected   = "connected"
	geminiUnavailable = "disconnected"
	memoryEnabled     = "enabled"
	memoryDisabled    = "disabled"

	historyClearedMessage = "Memory wiped."
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response      string       `json:"response"`
	Action        string       `json:"action"`
	Tasks         []model.Task `json:"tasks"`
	RuleTriggered bool         `json:"ruleTriggered"`
	RulePriority  int          `json:"rulePriority"`
	MentalState   string       `json:"mentalState"`
	Timestamp     string       `json:"timestamp"`
}

func (h *handler) newChatResp(o chat.ChatOutput) chatResp {
	tasks := o.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return chatResp{
		Response:      o.Response,
		Action:        o.Action,
		Tasks:         tasks,
		RuleTriggered: o.RuleTriggered,
		RulePriority:  o.RulePriority,
		MentalState:   mentalState(o.MentalState),
		Timestamp:     o.Timestamp.UTC().Format(time.RFC3339),
	}
}

func mentalState(s executive.State) string {
	if s == "" {
		return string(executive.StateNeutral)
	}
	return string(s)
}

type rulesResp struct {
	TotalRules int            `json:"totalRules"`
	Categories map[string]int `json:"categories"`
}

func (h *handler) newRulesResp(o chat.RulesOutput) rulesResp {
	return rulesResp{
		TotalRules: o.TotalRules,
		Categories: o.Categories,
	}
}

type healthResp struct {
	Status    string `json:"status"`
	Gemini    string `json:"gemini"`
	Timestamp string `json:"timestamp"`
}

func (h *handler) newHealthResp(available bool, now time.Time) healthResp {
	return healthResp{
		Status:    statusOK,
		Gemini:    geminiState(available),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

type statusResp struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Gemini string `json:"gemini"`
	Memory string `json:"memory"`
}

func (h *handler) newStatusResp(o chat.StatusOutput) statusResp {
	memory := memoryDisabled
	if o.MemoryEnabled {
		memory = memoryEnabled
	}
	return statusResp{
		Status: statusOnline,
		Model:  o.Model,
		Gemini: geminiState(o.Available),
		Memory: memory,
	}
}

func geminiState(available bool) string {
	if available {
		return geminiConnected
	}
	return geminiUnavailable
}

type clearHistoryResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type readingsResp struct {
	SessionStart     string `json:"sessionStart"`
	Fatigue          int    `json:"fatigue"`
	Stress           int    `json:"stress"`
	Motivation       int    `json:"motivation"`
	Accuracy         int    `json:"accuracy"`
	TaskStreak       int    `json:"taskStreak"`
	ConsecutiveSkips int    `json:"consecutiveSkips"`
	VisualPreference bool   `json:"visualPreference"`
	Level            string `json:"level"`
}

type patternResp struct {
	Type       string  `json:"type"`
	Data       string  `json:"data"`
	Confidence float64 `json:"confidence"`
	UpdatedAt  string  `json:"updatedAt"`
}

type storedTaskResp struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

type memoryResp struct {
	SessionID string           `json:"sessionId"`
	Readings  *readingsResp    `json:"readings"`
	Patterns  []patternResp    `json:"patterns"`
	Tasks     []storedTaskResp `json:"tasks"`
}

func (h *handler) newMemoryResp(o chat.MemoryOutput) memoryResp {
	resp := memoryResp{
		SessionID: o.SessionID,
		Patterns:  make([]patternResp, 0, len(o.Patterns)),
		Tasks:     make([]storedTaskResp, 0, len(o.Tasks)),
	}
	if o.Tracked {
		r := o.Readings
		resp.Readings = &readingsResp{
			SessionStart:     r.SessionStart.UTC().Format(time.RFC3339),
			Fatigue:          r.Fatigue,
			Stress:           r.Stress,
			Motivation:       r.Motivation,
			Accuracy:         r.Accuracy,
			TaskStreak:       r.TaskStreak,
			ConsecutiveSkips: r.ConsecutiveSkips,
			VisualPreference: r.VisualPreference,
			Level:            string(r.Level),
		}
	}
	for _, p := range o.Patterns {
		resp.Patterns = append(resp.Patterns, patternResp{
			Type:       p.Type,
			Data:       p.Data,
			Confidence: p.Confidence,
			UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, t := range o.Tasks {
		resp.Tasks = append(resp.Tasks, storedTaskResp{
			ID:       t.ID,
			Text:     t.Text,
			Priority: string(t.Priority),
			Status:   t.Status,
		})
	}
	return resp
}
