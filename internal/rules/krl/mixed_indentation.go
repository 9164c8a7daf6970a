package krl

import (
	"strings"

	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

// MixedIndentationCode is the issue code for the mixed-indentation rule.
const MixedIndentationCode = "mixed-indentation"

// MixedIndentationRule flags lines containing the whitespace character
// that is not the configured indent character.
type MixedIndentationRule struct{}

// NewMixedIndentationRule creates a new mixed-indentation rule instance.
func NewMixedIndentationRule() *MixedIndentationRule {
	return &MixedIndentationRule{}
}

// Metadata returns the rule metadata.
func (r *MixedIndentationRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "mixed-indentation",
		Code:            MixedIndentationCode,
		Description:     "Disallows the whitespace character not configured for indentation",
		DefaultCategory: rules.CategoryWarning,
		Fact:            rules.FactLine,
	}
}

// Lint reports a single finding at column 0 when the line contains the
// invalid whitespace character.
func (r *MixedIndentationRule) Lint(input rules.Input) []rules.Finding {
	if input.IndentChar == "\t" {
		if !strings.Contains(syntax.LeadingWhitespace(input.Line), " ") {
			return nil
		}
		return []rules.Finding{{
			Category: rules.CategoryWarning,
			Column:   0,
			Code:     MixedIndentationCode,
			Message:  "line indented with space(s)",
		}}
	}

	if !strings.ContainsRune(input.Line, '\t') {
		return nil
	}
	return []rules.Finding{{
		Category: rules.CategoryWarning,
		Column:   0,
		Code:     MixedIndentationCode,
		Message:  "line contains tab(s)",
	}}
}

// Fix replaces tabs anywhere with indent-size copies of the indent
// character. When indenting with tabs, only the leading whitespace run
// is rewritten; touching interior spaces would mangle code.
func (r *MixedIndentationRule) Fix(input rules.Input) string {
	if input.IndentChar == "\t" {
		leading := syntax.LeadingWhitespace(input.Line)
		spaces := strings.Count(leading, " ")
		tabs := strings.Count(leading, "\t") + spaces/input.IndentSize
		return strings.Repeat("\t", tabs) + input.Line[len(leading):]
	}
	unit := strings.Repeat(input.IndentChar, input.IndentSize)
	return strings.ReplaceAll(input.Line, "\t", unit)
}
