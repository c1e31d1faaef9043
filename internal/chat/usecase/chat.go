package usecase

import (
	"context"
	"strings"

	"lockfocus-assistant/internal/chat"
	"lockfocus-assistant/internal/model"
	"lockfocus-assistant/internal/rules"
	"lockfocus-assistant/internal/taskparser"
)

// turn carries one message through reply generation.
type turn struct {
	sessionID string
	message   string
	// strategy overrides the system instruction; empty means none.
	strategy string
}

// Chat answers one message. The safety net wins over every rule; otherwise the
// highest-priority rule drives the reply and decides whether tasks are extracted.
// Every message also updates the session's readiness readings.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}
	sessionID := sessionKey(input.SessionID)

	analysis := uc.executive.Analyze(sessionID, message)

	if rules.IsSafetyNetTriggered(message) {
		uc.l.Warnf(ctx, "chat.usecase.Chat: safety net triggered for session %s", sessionID)
		safety := rules.SafetyNetResponse()
		return chat.ChatOutput{
			Response:      safety.Response,
			Action:        safety.Action,
			Tasks:         []model.Task{},
			RuleTriggered: true,
			RulePriority:  safety.Priority,
			MentalState:   analysis.State,
			Timestamp:     uc.now(),
		}, nil
	}

	t := turn{
		sessionID: sessionID,
		message:   message,
		strategy:  uc.strategy(ctx, sessionID, analysis),
	}
	uc.rememberPattern(ctx, sessionID, analysis, message)

	top, matched := rules.TopRule(uc.rules.Analyze(message))

	tasks := []model.Task{}
	if rules.HasMultipleTasks(message) || (matched && chat.IsParseTasksAction(top.Action)) {
		tasks = uc.parser.ExtractTasks(message)
		uc.l.Infof(ctx, "chat.usecase.Chat: extracted %d tasks for session %s", len(tasks), sessionID)
		uc.syncTasks(ctx, sessionID, tasks)
	}

	out := chat.ChatOutput{
		Action:      chat.ActionGeneralSupport,
		Tasks:       tasks,
		MentalState: analysis.State,
		Timestamp:   uc.now(),
	}

	switch {
	case matched:
		uc.l.Infof(ctx, "chat.usecase.Chat: rule %s (%s) triggered for session %s", top.ID, top.Category, sessionID)
		out.Action = top.Action
		out.RuleTriggered = true
		out.RulePriority = top.Priority
		out.Response = uc.ruleReply(ctx, t, top, tasks)
	case len(tasks) > 0:
		out.Response = uc.refine(ctx, t, taskparser.FormatTasksForDisplay(tasks))
	default:
		out.Response = uc.conversationReply(ctx, t)
	}

	return out, nil
}

// ruleReply builds the reply for a matched rule, with the task list appended when present.
func (uc *implUseCase) ruleReply(ctx context.Context, t turn, top rules.Rule, tasks []model.Task) string {
	if len(tasks) > 0 {
		return uc.refine(ctx, t, top.Response+"\n\n"+taskparser.FormatTasksForDisplay(tasks))
	}
	if !uc.llm.Available() {
		return top.Response
	}
	return uc.generate(ctx, t, uc.History(ctx, t.sessionID), top.Response)
}

// refine rewrites text through the generator when one is configured.
func (uc *implUseCase) refine(ctx context.Context, t turn, text string) string {
	if !uc.llm.Available() {
		return text
	}
	return uc.generate(ctx, t, nil, text)
}

// conversationReply answers free conversation and records both turns in the session.
func (uc *implUseCase) conversationReply(ctx context.Context, t turn) string {
	if !uc.llm.Available() {
		return offlineResponse
	}

	reply := uc.generate(ctx, t, uc.History(ctx, t.sessionID), "")
	uc.appendHistory(t.sessionID,
		model.Message{Role: model.RoleUser, Content: t.message},
		model.Message{Role: model.RoleAssistant, Content: reply},
	)
	return reply
}

// Rules summarizes the loaded rule set.
func (uc *implUseCase) Rules(ctx context.Context) chat.RulesOutput {
	return chat.RulesOutput{
		TotalRules: len(uc.rules.Rules()),
		Categories: uc.rules.CategoryCounts(),
	}
}

// Available reports whether the reply generator is configured.
func (uc *implUseCase) Available(ctx context.Context) bool {
	return uc.llm.Available()
}

// Status reports the model in use and which optional backends are wired.
func (uc *implUseCase) Status(ctx context.Context) chat.StatusOutput {
	return chat.StatusOutput{
		Model:         uc.llm.Model(),
		Available:     uc.llm.Available(),
		MemoryEnabled: uc.memory != nil,
	}
}

func sessionKey(id string) string {
	if id = strings.TrimSpace(id); id == "" {
		return chat.DefaultSessionID
	}
	return id
}
