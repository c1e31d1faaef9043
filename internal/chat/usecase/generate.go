package usecase

import (
	"context"
	"strings"

	"lockfocus-assistant/internal/model"
	"lockfocus-assistant/pkg/gemini"
)

// generate asks the model for a reply. Failures are logged and answered with a
// fixed fallback so the user always gets a response.
func (uc *implUseCase) generate(ctx context.Context, t turn, history []model.Message, goal string) string {
	contents := make([]gemini.Content, 0, len(history)+2)
	contents = append(contents, gemini.NewTextContent(gemini.RoleModel, greeting))
	for _, m := range history {
		role := gemini.RoleModel
		if m.Role == model.RoleUser {
			role = gemini.RoleUser
		}
		contents = append(contents, gemini.NewTextContent(role, m.Content))
	}
	contents = append(contents, gemini.NewTextContent(gemini.RoleUser, gemini.BuildSupportPrompt(t.message, goal)))

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: gemini.BuildSystemInstruction(t.strategy)}}},
		Contents:          contents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.generate: %v", err)
		return generatorErrorResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		uc.l.Warnf(ctx, "chat.usecase.generate: %v", gemini.ErrEmptyResponse)
		return generatorErrorResponse
	}
	return text
}
