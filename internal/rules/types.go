package rules

import "regexp"

// Rule is a canned support response selected by trigger phrases.
type Rule struct {
	ID       string   `yaml:"id" json:"id"`
	Category string   `yaml:"category" json:"category"`
	Triggers []string `yaml:"triggers" json:"triggers"`
	Response string   `yaml:"response" json:"response"`
	Action   string   `yaml:"action" json:"action"`
	Priority int      `yaml:"priority" json:"priority"`
}

// ruleFile is the on-disk rule set.
type ruleFile struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// SafetyResponse is returned instead of any rule when crisis language is detected.
type SafetyResponse struct {
	Response string
	Action   string
	Priority int
}

type compiledRule struct {
	Rule
	patterns []*regexp.Regexp
}
