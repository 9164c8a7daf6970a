package syntax

import (
	"regexp"
	"strings"
)

// Keywords is the KRL reserved-word vocabulary checked for casing.
var Keywords = []string{
	"GLOBAL", "PUBLIC", "DEF", "END", "DEFFCT", "ENDFCT", "DEFDAT", "ENDDAT",
	"IN", "OUT", "IF", "THEN", "ELSE", "ENDIF", "FOR", "TO", "STEP", "ENDFOR",
	"LOOP", "ENDLOOP", "REPEAT", "UNTIL", "SWITCH", "CASE", "DEFAULT",
	"ENDSWITCH", "WAIT", "SEC", "WHILE", "ENDWHILE", "SIGNAL", "CONST", "ANIN",
	"ANOUT", "ON", "OFF", "DELAY", "MINIMUM", "MAXIMUM", "CONTINUE", "EXIT",
	"GOTO", "HALT", "RETURN", "RESUME", "PULSE", "BRAKE", "INTERRUPT", "DECL",
	"WHEN", "DO", "ENABLE", "DISABLE", "TRIGGER", "DISTANCE", "PATH", "ONSTART",
	"PTP", "LIN", "CIRC", "PTP_REL", "LIN_REL", "SPLINE", "ENDSPLINE",
	"SPL", "SPTP", "SLIN", "SCIRC", "TIME_BLOCK", "START", "PART",
	"NOT", "AND", "OR", "EXOR", "B_NOT", "B_AND", "B_OR", "B_EXOR",
}

// BuiltInTypes is the vocabulary of KRL built-in data types.
var BuiltInTypes = []string{
	"INT", "REAL", "CHAR", "FRAME", "POS", "E6POS", "AXIS", "E6AXIS", "STRUC",
	"ENUM",
}

// indentKeywords open a block: the next line is expected one level deeper.
var indentKeywords = []string{
	"IF", "ELSE", "FOR", "LOOP", "REPEAT", "SWITCH", "CASE", "DEFAULT",
	"WHILE",
}

// unindentKeywords close (or re-open) a block: the line they appear on is
// expected one level shallower.
var unindentKeywords = []string{
	"ELSE", "ENDIF", "ENDFOR", "ENDLOOP", "UNTIL", "CASE", "DEFAULT",
	"ENDSWITCH", "ENDWHILE",
}

var (
	keywordPattern     = wordPattern(Keywords)
	builtInTypePattern = wordPattern(BuiltInTypes)
	indentPattern      = wordPattern(indentKeywords)
	unindentPattern    = wordPattern(unindentKeywords)

	// "WAIT FOR condition" is a timed wait, not a counting loop.
	waitForPattern = regexp.MustCompile(`(?i)WAIT\s$`)
)

// wordPattern compiles a case-insensitive, word-bounded alternation.
func wordPattern(words []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Match is one keyword occurrence inside a scanned string.
type Match struct {
	Start int
	End   int
	Text  string
}

// matchAll returns every pattern match in s that is not preceded by the
// fold marker '#'. Go's regexp has no lookbehind, so the exclusion is
// applied after matching.
func matchAll(pattern *regexp.Regexp, s string) []Match {
	var matches []Match
	for _, loc := range pattern.FindAllStringIndex(s, -1) {
		if loc[0] > 0 && s[loc[0]-1] == '#' {
			continue
		}
		matches = append(matches, Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]})
	}
	return matches
}

// MatchKeywords returns every reserved-word occurrence in the code segment.
func MatchKeywords(code string) []Match {
	return matchAll(keywordPattern, code)
}

// MatchBuiltInTypes returns every built-in-type occurrence in the code segment.
func MatchBuiltInTypes(code string) []Match {
	return matchAll(builtInTypePattern, code)
}

// OpensBlock reports whether the code segment contains a block-opening
// keyword. "FOR" directly after "WAIT " does not count.
func OpensBlock(code string) bool {
	for _, m := range matchAll(indentPattern, code) {
		if strings.EqualFold(m.Text, "FOR") && waitForPattern.MatchString(code[:m.Start]) {
			continue
		}
		return true
	}
	return false
}

// ClosesBlock reports whether the code segment contains a block-closing
// keyword.
func ClosesBlock(code string) bool {
	return len(matchAll(unindentPattern, code)) > 0
}
