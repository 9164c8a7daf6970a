package krl

import (
	"regexp"
	"strings"

	"github.com/krlwerk/krlstyle/internal/rules"
)

// SuperfluousWhitespaceCode is the issue code for the extraneous-whitespace rule.
const SuperfluousWhitespaceCode = "superfluous-whitespace"

var whitespaceRunPattern = regexp.MustCompile(`[ \t]{2,}`)

// ExtraneousWhitespaceRule flags runs of two or more whitespace
// characters inside the code segment. Leading indentation is not part
// of the code text being checked and is left alone.
type ExtraneousWhitespaceRule struct{}

// NewExtraneousWhitespaceRule creates a new extraneous-whitespace rule instance.
func NewExtraneousWhitespaceRule() *ExtraneousWhitespaceRule {
	return &ExtraneousWhitespaceRule{}
}

// Metadata returns the rule metadata.
func (r *ExtraneousWhitespaceRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "extraneous-whitespace",
		Code:            SuperfluousWhitespaceCode,
		Description:     "Disallows runs of whitespace between code tokens",
		DefaultCategory: rules.CategoryConvention,
		Fact:            rules.FactCodeLine,
	}
}

// Lint reports a finding at the start of each whitespace run that
// follows a non-whitespace character. Columns are absolute offsets
// within the line.
func (r *ExtraneousWhitespaceRule) Lint(input rules.Input) []rules.Finding {
	offset := len(input.Code) - len(strings.TrimLeft(input.Code, " \t"))
	trimmed := strings.TrimSpace(input.Code)

	var findings []rules.Finding
	for _, loc := range whitespaceRunPattern.FindAllStringIndex(trimmed, -1) {
		if loc[0] == 0 {
			continue
		}
		findings = append(findings, rules.Finding{
			Category: rules.CategoryConvention,
			Column:   offset + loc[0],
			Code:     SuperfluousWhitespaceCode,
			Message:  "superfluous whitespace",
		})
	}
	return findings
}

// Fix collapses each qualifying run to a single space and reattaches
// the comment.
func (r *ExtraneousWhitespaceRule) Fix(input rules.Input) string {
	code := input.Code
	var b strings.Builder
	last := 0
	for _, loc := range whitespaceRunPattern.FindAllStringIndex(code, -1) {
		if loc[0] == 0 {
			continue
		}
		b.WriteString(code[last:loc[0]])
		b.WriteByte(' ')
		last = loc[1]
	}
	b.WriteString(code[last:])
	return input.ReattachComment(b.String())
}
