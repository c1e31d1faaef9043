package usecase

import (
	"lockfocus-assistant/internal/task"
	"lockfocus-assistant/internal/taskparser"
	pkgLog "lockfocus-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	parser *taskparser.Parser
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, parser *taskparser.Parser) *implUseCase {
	return &implUseCase{
		l:      l,
		parser: parser,
	}
}
