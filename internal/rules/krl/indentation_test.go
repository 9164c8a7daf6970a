package krl

import (
	"testing"

	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

func lintLine(rule *IndentationRule, line string) []rules.Finding {
	seg := syntax.Classify(line)
	return rule.Lint(rules.Input{
		Line:       line,
		Code:       seg.Code,
		Comment:    seg.Comment,
		Delimiter:  seg.Delimiter,
		HasComment: seg.HasComment,
		IndentChar: " ",
		IndentSize: 3,
	})
}

func fixLine(rule *IndentationRule, line string) string {
	return rule.Fix(rules.Input{Line: line, IndentChar: " ", IndentSize: 3})
}

func TestIndentationRule(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	lines := []string{
		"IF foo THEN",
		"      bar",
		"ENDIF",
		"",
		"   ;FOLD PTP;%{PE}",
		"   ;ENDFOLD",
	}

	var got []rules.Finding
	for _, line := range lines {
		got = append(got, lintLine(rule, line)...)
	}

	if len(got) != 3 {
		t.Fatalf("got %d findings, want 3", len(got))
	}

	if got[0].Column != 6 || got[0].Code != BadIndentationCode {
		t.Errorf("findings[0] = %+v, want bad-indentation at column 6", got[0])
	}
	if got[0].Message != "wrong indentation (found 6 spaces, exptected 3)" {
		t.Errorf("findings[0].Message = %q", got[0].Message)
	}

	for i, finding := range got[1:] {
		if finding.Code != BadIndentedInlineFormCode {
			t.Errorf("findings[%d].Code = %q, want %q", i+1, finding.Code, BadIndentedInlineFormCode)
		}
		if finding.Column != 3 {
			t.Errorf("findings[%d].Column = %d, want 3", i+1, finding.Column)
		}
		if finding.Message != "wrong indentation (found 3 spaces, exptected 0)" {
			t.Errorf("findings[%d].Message = %q", i+1, finding.Message)
		}
	}
}

func TestIndentationRuleFix(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	lines := []string{
		"IF foo THEN",
		"      bar",
		"ENDIF",
	}
	want := []string{
		"IF foo THEN",
		"   bar",
		"ENDIF",
	}

	for i, line := range lines {
		if findings := lintLine(rule, line); len(findings) > 0 {
			line = fixLine(rule, line)
		}
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestIndentationRuleNestedBlocks(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	lines := []string{
		"FOR i=1 TO 5",
		"   IF foo THEN",
		"      PTP home",
		"   ELSE",
		"      PTP start",
		"   ENDIF",
		"ENDFOR",
	}
	for i, line := range lines {
		if findings := lintLine(rule, line); len(findings) != 0 {
			t.Errorf("line %d %q: unexpected findings %+v", i, line, findings)
		}
	}
}

func TestIndentationRuleWaitForStaysFlat(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	lines := []string{
		"WAIT FOR $IN[1]",
		"PTP home",
	}
	for i, line := range lines {
		if findings := lintLine(rule, line); len(findings) != 0 {
			t.Errorf("line %d %q: unexpected findings %+v", i, line, findings)
		}
	}
}

func TestIndentationRuleDecrementFloor(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	// A stray closer must not push the expected level below zero.
	lines := []string{
		"ENDIF",
		"ENDIF",
		"PTP home",
	}
	for i, line := range lines {
		if findings := lintLine(rule, line); len(findings) != 0 {
			t.Errorf("line %d %q: unexpected findings %+v", i, line, findings)
		}
	}
}

func TestIndentationRuleReset(t *testing.T) {
	rule := NewIndentationRule()
	rule.Reset()

	lintLine(rule, "IF foo THEN")

	// A new file starts at level zero again.
	rule.Reset()
	if findings := lintLine(rule, "PTP home"); len(findings) != 0 {
		t.Errorf("unexpected findings after reset: %+v", findings)
	}
}
