package krl

import (
	"testing"

	"github.com/krlwerk/krlstyle/internal/testutil"
)

func TestExtraneousWhitespaceRule(t *testing.T) {
	testutil.RunRuleTests(t, NewExtraneousWhitespaceRule(), []testutil.RuleTestCase{
		{
			Name:         "single spaces",
			Line:         "DECL INT foo",
			WantFindings: 0,
		},
		{
			Name:         "double space between tokens",
			Line:         "DECL INT  foo",
			WantFindings: 1,
			WantCodes:    []string{SuperfluousWhitespaceCode},
			WantColumns:  []int{8},
			WantMessages: []string{"superfluous whitespace"},
			CheckFix:     true,
			WantFixed:    "DECL INT foo",
		},
		{
			Name:         "indentation is not flagged",
			Line:         "   PTP home",
			WantFindings: 0,
		},
		{
			Name:         "indented line with interior run",
			Line:         "   x  = 5",
			WantFindings: 1,
			WantColumns:  []int{4},
			CheckFix:     true,
			WantFixed:    "   x = 5",
		},
		{
			Name:         "run before comment is kept out of the check",
			Line:         "PTP home  ; comment",
			WantFindings: 0,
		},
		{
			Name:         "interior run with comment reattached",
			Line:         "x  = 5 ; note",
			WantFindings: 1,
			WantColumns:  []int{1},
			CheckFix:     true,
			WantFixed:    "x = 5 ; note",
		},
	})
}
