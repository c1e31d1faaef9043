// Package rules matches user messages against a declarative set of support rules.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

var (
	ErrNoRules       = errors.New("rules: rule set is empty")
	ErrInvalidRule   = errors.New("rules: invalid rule")
	ErrDuplicateRule = errors.New("rules: duplicate rule id")
)

// Engine holds a compiled rule set. It is immutable and safe for concurrent use.
type Engine struct {
	rules []compiledRule
}

// New returns an engine loaded with the embedded rule set.
func New() (*Engine, error) {
	return Parse(defaultRules)
}

// Load reads a rule set from path, or the embedded set when path is empty.
func Load(path string) (*Engine, error) {
	if path == "" {
		return New()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a YAML rule set.
func Parse(data []byte) (*Engine, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rules: failed to parse: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, ErrNoRules
	}

	seen := make(map[string]struct{}, len(file.Rules))
	compiled := make([]compiledRule, 0, len(file.Rules))
	for i, r := range file.Rules {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: rule %d has no id", ErrInvalidRule, i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.ID)
		}
		seen[r.ID] = struct{}{}

		if len(r.Triggers) == 0 {
			return nil, fmt.Errorf("%w: %s has no triggers", ErrInvalidRule, r.ID)
		}
		if strings.TrimSpace(r.Response) == "" {
			return nil, fmt.Errorf("%w: %s has no response", ErrInvalidRule, r.ID)
		}

		cr := compiledRule{Rule: r, patterns: make([]*regexp.Regexp, 0, len(r.Triggers))}
		for _, trigger := range r.Triggers {
			re, err := compileTrigger(trigger)
			if err != nil {
				return nil, fmt.Errorf("%w: %s trigger %q: %v", ErrInvalidRule, r.ID, trigger, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		compiled = append(compiled, cr)
	}

	return &Engine{rules: compiled}, nil
}

// compileTrigger turns "/expr/" into a case-insensitive regexp and anything else
// into a case-insensitive whole-word literal.
func compileTrigger(trigger string) (*regexp.Regexp, error) {
	if len(trigger) > 2 && strings.HasPrefix(trigger, "/") && strings.HasSuffix(trigger, "/") {
		return regexp.Compile("(?i)" + trigger[1:len(trigger)-1])
	}
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil, errors.New("empty trigger")
	}
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(trigger) + `\b`)
}

// Analyze returns every rule with a matching trigger, highest priority first.
// Ties keep declaration order.
func (e *Engine) Analyze(input string) []Rule {
	matched := make([]Rule, 0)
	for _, r := range e.rules {
		if r.matches(input) {
			matched = append(matched, r.Rule)
		}
	}
	slices.SortStableFunc(matched, func(a, b Rule) int {
		return b.Priority - a.Priority
	})
	return matched
}

func (r compiledRule) matches(input string) bool {
	for _, re := range r.patterns {
		if re.MatchString(input) {
			return true
		}
	}
	return false
}

// TopRule returns the first of the matched rules.
func TopRule(matched []Rule) (Rule, bool) {
	if len(matched) == 0 {
		return Rule{}, false
	}
	return matched[0], true
}

// Rules returns the loaded rules in declaration order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Rule
		out[i].Triggers = slices.Clone(r.Triggers)
	}
	return out
}

// CategoryCounts counts rules per category. The standard categories are always present.
func (e *Engine) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, r := range e.rules {
		counts[r.Category]++
	}
	return counts
}
