package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lockfocus-assistant/internal/chat"
	"lockfocus-assistant/internal/executive"
	memoryRepo "lockfocus-assistant/internal/memory/repository"
	"lockfocus-assistant/internal/model"
	"lockfocus-assistant/internal/rules"
	"lockfocus-assistant/internal/taskparser"
	"lockfocus-assistant/pkg/gemini"
	pkgLog "lockfocus-assistant/pkg/log"
)

// Options tunes session history retention. Zero fields use the chat package defaults.
type Options struct {
	HistoryLimit int
	SessionTTL   time.Duration
	MaxSessions  int
}

type implUseCase struct {
	l      pkgLog.Logger
	rules  *rules.Engine
	parser *taskparser.Parser
	llm    gemini.IGemini

	executive *executive.Analyzer
	// memory is optional; nil disables pattern and task persistence.
	memory memoryRepo.Repository

	// mu serializes read-modify-write of a session's history.
	mu           sync.Mutex
	sessions     *expirable.LRU[string, []model.Message]
	historyLimit int

	now func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance. memory may be nil.
func New(
	l pkgLog.Logger,
	engine *rules.Engine,
	parser *taskparser.Parser,
	llm gemini.IGemini,
	analyzer *executive.Analyzer,
	memory memoryRepo.Repository,
	opts Options,
) *implUseCase {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = chat.DefaultHistoryLimit
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = chat.DefaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = chat.DefaultMaxSessions
	}
	if analyzer == nil {
		analyzer = executive.New(executive.Options{})
	}

	return &implUseCase{
		l:            l,
		rules:        engine,
		parser:       parser,
		llm:          llm,
		executive:    analyzer,
		memory:       memory,
		sessions:     expirable.NewLRU[string, []model.Message](opts.MaxSessions, nil, opts.SessionTTL),
		historyLimit: opts.HistoryLimit,
		now:          time.Now,
	}
}
