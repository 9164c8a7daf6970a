// Package testutil provides test helpers for the KRL style rules.
package testutil

import (
	"testing"

	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

// MakeInput builds a rule input for one line with the default indent
// configuration (three spaces).
func MakeInput(tb testing.TB, line string) rules.Input {
	tb.Helper()
	return MakeInputWith(tb, line, " ", 3)
}

// MakeInputWith builds a rule input for one line with an explicit
// indent configuration.
func MakeInputWith(tb testing.TB, line, indentChar string, indentSize int) rules.Input {
	tb.Helper()

	seg := syntax.Classify(line)
	return rules.Input{
		Filename:   "test.src",
		LineNumber: 0,
		Line:       line,
		Code:       seg.Code,
		Comment:    seg.Comment,
		Delimiter:  seg.Delimiter,
		HasComment: seg.HasComment,
		IndentChar: indentChar,
		IndentSize: indentSize,
	}
}

// RuleTestCase defines a test case for table-driven rule tests over a
// single line.
type RuleTestCase struct {
	// Name is the test case name.
	Name string

	// Line is the input line without trailing newline.
	Line string

	// WantFindings is the expected number of findings.
	// Use -1 to skip the count check.
	WantFindings int

	// WantCodes is the expected issue codes in finding order.
	WantCodes []string

	// WantColumns is the expected zero-based columns in finding order.
	WantColumns []int

	// WantMessages is the expected finding messages in order.
	WantMessages []string

	// CheckFix enables the fix comparison against WantFixed.
	CheckFix  bool
	WantFixed string
}

// RunRuleTests runs a table of single-line cases against a rule.
// Stateful rules are reset before every case.
func RunRuleTests(t *testing.T, rule rules.Rule, cases []RuleTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if stateful, ok := rule.(rules.StatefulRule); ok {
				stateful.Reset()
			}

			input := MakeInput(t, tc.Line)
			findings := rule.Lint(input)

			if tc.WantFindings >= 0 && len(findings) != tc.WantFindings {
				t.Errorf("got %d findings, want %d", len(findings), tc.WantFindings)
				for i, f := range findings {
					t.Logf("  [%d] %s: %s", i, f.Code, f.Message)
				}
			}

			if len(tc.WantCodes) > 0 {
				if len(findings) != len(tc.WantCodes) {
					t.Errorf("got %d findings, want %d", len(findings), len(tc.WantCodes))
				} else {
					for i, code := range tc.WantCodes {
						if findings[i].Code != code {
							t.Errorf("finding[%d].Code = %q, want %q", i, findings[i].Code, code)
						}
					}
				}
			}

			if len(tc.WantColumns) > 0 && len(findings) == len(tc.WantColumns) {
				for i, col := range tc.WantColumns {
					if findings[i].Column != col {
						t.Errorf("finding[%d].Column = %d, want %d", i, findings[i].Column, col)
					}
				}
			}

			if len(tc.WantMessages) > 0 && len(findings) == len(tc.WantMessages) {
				for i, msg := range tc.WantMessages {
					if findings[i].Message != msg {
						t.Errorf("finding[%d].Message = %q, want %q", i, findings[i].Message, msg)
					}
				}
			}

			if tc.CheckFix {
				if fixed := rule.Fix(input); fixed != tc.WantFixed {
					t.Errorf("Fix() = %q, want %q", fixed, tc.WantFixed)
				}
			}
		})
	}
}
