package krl

import (
	"fmt"
	"strings"

	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

// Issue codes emitted by the indentation rule.
const (
	BadIndentationCode        = "bad-indentation"
	BadIndentedInlineFormCode = "bad-indented-inline-form"
)

// IndentationRule tracks the running block nesting level across the
// lines of a file and flags lines whose leading whitespace does not
// match level times the configured indent size.
//
// Block openers raise the level for the following line, not their own.
// Closers lower it for the line they appear on, never below zero.
type IndentationRule struct {
	indentLevel    int
	indentNextLine bool
}

// NewIndentationRule creates a new indentation rule instance.
func NewIndentationRule() *IndentationRule {
	return &IndentationRule{}
}

// Metadata returns the rule metadata.
func (r *IndentationRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "indentation",
		Code:            BadIndentationCode,
		ExtraCodes:      []string{BadIndentedInlineFormCode},
		Description:     "Requires indentation matching the block nesting level",
		DefaultCategory: rules.CategoryWarning,
		Fact:            rules.FactLine,
	}
}

// Reset clears the nesting state before a new file.
func (r *IndentationRule) Reset() {
	r.indentLevel = 0
	r.indentNextLine = false
}

// Lint advances the nesting state and checks the line's indentation.
// Blank lines advance state but are never flagged.
func (r *IndentationRule) Lint(input rules.Input) []rules.Finding {
	r.advance(input.Code)

	stripped := strings.TrimLeft(input.Line, " \t")
	if stripped == "" {
		return nil
	}

	indent := len(input.Line) - len(stripped)
	wanted := r.indentLevel * input.IndentSize
	if indent == wanted {
		return nil
	}

	code := BadIndentationCode
	if isInlineForm(stripped) {
		code = BadIndentedInlineFormCode
	}

	return []rules.Finding{{
		Category: rules.CategoryWarning,
		Column:   indent,
		Code:     code,
		Message:  fmt.Sprintf("wrong indentation (found %d spaces, exptected %d)", indent, wanted),
	}}
}

// Fix re-indents the line to the current nesting level.
func (r *IndentationRule) Fix(input rules.Input) string {
	indent := strings.Repeat(input.IndentChar, r.indentLevel*input.IndentSize)
	return indent + strings.TrimLeft(input.Line, " \t")
}

func (r *IndentationRule) advance(code string) {
	if r.indentNextLine {
		r.indentLevel++
		r.indentNextLine = false
	}

	if syntax.ClosesBlock(code) {
		r.indentLevel--
		if r.indentLevel < 0 {
			r.indentLevel = 0
		}
	}

	if syntax.OpensBlock(code) {
		r.indentNextLine = true
	}
}

// isInlineForm reports whether the trimmed line is a ;FOLD or ;ENDFOLD
// marker of the KUKA editor's collapsed inline forms.
func isInlineForm(stripped string) bool {
	upper := strings.ToUpper(stripped)
	return strings.HasPrefix(upper, ";FOLD") || strings.HasPrefix(upper, ";ENDFOLD")
}
