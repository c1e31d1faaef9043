package task

import "lockfocus-assistant/internal/model"

// --- UseCase Inputs ---

type ParseInput struct {
	Message string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Input       string
	TasksFound  int
	Tasks       []model.Task
	Categorized model.CategorizedTasks
	Display     string
}
