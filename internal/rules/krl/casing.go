package krl

import (
	"strings"

	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

// Issue codes emitted by the casing rules.
const (
	WrongCaseKeywordCode = "wrong-case-keyword"
	WrongCaseTypeCode    = "wrong-case-type"
)

// lintCasing flags every matched token that is not fully upper-case.
func lintCasing(matches []syntax.Match, issueCode, message string) []rules.Finding {
	var findings []rules.Finding
	for _, m := range matches {
		if m.Text == strings.ToUpper(m.Text) {
			continue
		}
		findings = append(findings, rules.Finding{
			Category: rules.CategoryWarning,
			Column:   m.Start,
			Code:     issueCode,
			Message:  message,
		})
	}
	return findings
}

// fixCasing upper-cases every matched token in the code segment.
func fixCasing(code string, matches []syntax.Match) string {
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(code[last:m.Start])
		b.WriteString(strings.ToUpper(m.Text))
		last = m.End
	}
	b.WriteString(code[last:])
	return b.String()
}

// KeywordCaseRule flags KRL keywords written in lower or mixed case.
type KeywordCaseRule struct{}

// NewKeywordCaseRule creates a new keyword-case rule instance.
func NewKeywordCaseRule() *KeywordCaseRule {
	return &KeywordCaseRule{}
}

// Metadata returns the rule metadata.
func (r *KeywordCaseRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "keyword-case",
		Code:            WrongCaseKeywordCode,
		Description:     "Requires upper-case KRL keywords",
		DefaultCategory: rules.CategoryWarning,
		Fact:            rules.FactCodeLine,
	}
}

// Lint reports a finding for every keyword not written in upper case.
func (r *KeywordCaseRule) Lint(input rules.Input) []rules.Finding {
	return lintCasing(syntax.MatchKeywords(input.Code), WrongCaseKeywordCode,
		"lower or mixed case keyword")
}

// Fix upper-cases every keyword and reattaches the comment.
func (r *KeywordCaseRule) Fix(input rules.Input) string {
	return input.ReattachComment(fixCasing(input.Code, syntax.MatchKeywords(input.Code)))
}

// BuiltInTypeCaseRule flags KRL built-in type names written in lower or
// mixed case.
type BuiltInTypeCaseRule struct{}

// NewBuiltInTypeCaseRule creates a new built-in-type-case rule instance.
func NewBuiltInTypeCaseRule() *BuiltInTypeCaseRule {
	return &BuiltInTypeCaseRule{}
}

// Metadata returns the rule metadata.
func (r *BuiltInTypeCaseRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Name:            "builtin-type-case",
		Code:            WrongCaseTypeCode,
		Description:     "Requires upper-case KRL built-in type names",
		DefaultCategory: rules.CategoryWarning,
		Fact:            rules.FactCodeLine,
	}
}

// Lint reports a finding for every built-in type not written in upper case.
func (r *BuiltInTypeCaseRule) Lint(input rules.Input) []rules.Finding {
	return lintCasing(syntax.MatchBuiltInTypes(input.Code), WrongCaseTypeCode,
		"lower or mixed case built-in type")
}

// Fix upper-cases every built-in type and reattaches the comment.
func (r *BuiltInTypeCaseRule) Fix(input rules.Input) string {
	return input.ReattachComment(fixCasing(input.Code, syntax.MatchBuiltInTypes(input.Code)))
}
