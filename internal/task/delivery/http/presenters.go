package http

import (
	"lockfocus-assistant/internal/model"
	"lockfocus-assistant/internal/task"
)

// --- Request DTOs ---

type parseReq struct {
	Message string `json:"message" binding:"required"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Message: r.Message}
}

// --- Response DTOs ---

type parseResp struct {
	Input       string                 `json:"input"`
	TasksFound  int                    `json:"tasksFound"`
	Tasks       []model.Task           `json:"tasks"`
	Categorized model.CategorizedTasks `json:"categorized"`
	Display     string                 `json:"display"`
}

func (h *handler) newParseResp(o task.ParseOutput) parseResp {
	return parseResp{
		Input:       o.Input,
		TasksFound:  o.TasksFound,
		Tasks:       o.Tasks,
		Categorized: o.Categorized,
		Display:     o.Display,
	}
}
