package chat

import (
	"strings"
	"time"
)

const (
	DefaultSessionID     = "default"
	ActionGeneralSupport = "general_support"

	// parseTasksAction marks rules whose action asks for task extraction.
	parseTasksAction = "parse_tasks"
)

const (
	DefaultHistoryLimit = 20
	DefaultSessionTTL   = 30 * time.Minute
	DefaultMaxSessions  = 1000
)

// IsParseTasksAction reports whether a rule action requests task extraction.
func IsParseTasksAction(action string) bool {
	return strings.Contains(action, parseTasksAction)
}
