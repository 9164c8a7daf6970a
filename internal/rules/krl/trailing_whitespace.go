// Package krl contains the built-in style rules for KRL source lines.
package krl

import (
	"strings"

	"github.com/krlwerk/krlstyle/internal/rules"
)

// TrailingWhitespaceCode is the issue code for the trailing-whitespace rule.
const TrailingWhitespaceCode = "trailing-whitespace"

// TrailingWhitespaceRule flags whitespace at the end of a line.
type TrailingWhitespaceRule struct{}

// NewTrailingWhitespaceRule creates a new trailing-whitespace rule instance.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{}
}

// Metadata returns the rule metadata.
func (r *TrailingWhitespaceRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "trailing-whitespace",
		Code:            TrailingWhitespaceCode,
		Description:     "Disallows trailing whitespace at the end of lines",
		DefaultCategory: rules.CategoryConvention,
		Fact:            rules.FactLine,
	}
}

// Lint reports a finding at the first trailing whitespace character.
func (r *TrailingWhitespaceRule) Lint(input rules.Input) []rules.Finding {
	trimmed := strings.TrimRight(input.Line, " \t")
	if trimmed == input.Line {
		return nil
	}
	return []rules.Finding{{
		Category: rules.CategoryConvention,
		Column:   len(trimmed),
		Code:     TrailingWhitespaceCode,
		Message:  "trailing whitespace",
	}}
}

// Fix removes trailing whitespace, keeping indentation intact.
func (r *TrailingWhitespaceRule) Fix(input rules.Input) string {
	return strings.TrimRight(input.Line, " \t")
}
