package krl

import (
	"testing"

	"github.com/krlwerk/krlstyle/internal/testutil"
)

func TestMixedIndentationRule(t *testing.T) {
	testutil.RunRuleTests(t, NewMixedIndentationRule(), []testutil.RuleTestCase{
		{
			Name:         "no tabs",
			Line:         "   PTP home",
			WantFindings: 0,
		},
		{
			Name:         "tab indentation",
			Line:         "\tPTP home",
			WantFindings: 1,
			WantCodes:    []string{MixedIndentationCode},
			WantColumns:  []int{0},
			WantMessages: []string{"line contains tab(s)"},
			CheckFix:     true,
			WantFixed:    "   PTP home",
		},
		{
			Name:         "interior tab",
			Line:         "PTP\thome",
			WantFindings: 1,
			CheckFix:     true,
			WantFixed:    "PTP   home",
		},
	})
}

func TestMixedIndentationRuleWithTabConfig(t *testing.T) {
	rule := NewMixedIndentationRule()

	input := testutil.MakeInputWith(t, "    foo", "\t", 4)
	findings := rule.Lint(input)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Column != 0 {
		t.Errorf("Column = %d, want 0", findings[0].Column)
	}
	if got := rule.Fix(input); got != "\tfoo" {
		t.Errorf("Fix() = %q, want %q", got, "\tfoo")
	}

	// Interior spaces are fine when indenting with tabs.
	input = testutil.MakeInputWith(t, "\tPTP home", "\t", 4)
	if findings := rule.Lint(input); len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
}
