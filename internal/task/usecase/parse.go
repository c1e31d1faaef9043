package usecase

import (
	"context"

	"lockfocus-assistant/internal/task"
	"lockfocus-assistant/internal/taskparser"
)

// Parse runs extraction, categorization and display formatting over one message.
// Only an empty message is rejected; blank text yields no tasks.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if input.Message == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	tasks := uc.parser.ExtractTasks(input.Message)
	uc.l.Infof(ctx, "task.usecase.Parse: extracted %d tasks", len(tasks))

	return task.ParseOutput{
		Input:       input.Message,
		TasksFound:  len(tasks),
		Tasks:       tasks,
		Categorized: taskparser.CategorizeTasks(tasks),
		Display:     taskparser.FormatTasksForDisplay(tasks),
	}, nil
}
