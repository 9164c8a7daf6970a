package krl

import "github.com/krlwerk/krlstyle/internal/rules"

// DefaultRules returns the built-in rule set in dispatch order. The
// caller registers these with a Registry at startup; there is no
// init-time registration.
func DefaultRules() []rules.Rule {
	return []rules.Rule{
		NewTrailingWhitespaceRule(),
		NewMixedIndentationRule(),
		NewIndentationRule(),
		NewExtraneousWhitespaceRule(),
		NewKeywordCaseRule(),
		NewBuiltInTypeCaseRule(),
	}
}

// NewDefaultRegistry creates a registry populated with the built-in rules.
func NewDefaultRegistry() *rules.Registry {
	registry := rules.NewRegistry()
	for _, rule := range DefaultRules() {
		registry.MustRegister(rule)
	}
	return registry
}
