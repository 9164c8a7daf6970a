// Package syntax provides line-level lexical helpers for KRL source text.
//
// KRL is linted line by line; no AST is ever built. This package knows just
// enough about the language's surface to split a line into its code and
// comment segments and to locate reserved words inside the code segment.
package syntax

import "strings"

// Comment delimiters recognized in KRL source. A semicolon starts a full-line
// or trailing comment; an ampersand starts a header/continuation line.
const (
	SemicolonDelimiter = ';'
	AmpersandDelimiter = '&'
)

// Segments is the result of classifying one raw source line.
type Segments struct {
	// Code is the text before the first comment delimiter, or the whole
	// line when no delimiter is present.
	Code string

	// Comment is the text after the first comment delimiter, without the
	// delimiter itself. Empty when the line carries no comment.
	Comment string

	// Delimiter is the comment delimiter that split the line (';' or '&').
	// Zero when the line carries no comment.
	Delimiter byte

	// HasComment reports whether any comment delimiter occurs in the line.
	HasComment bool

	// IsCode reports whether the line counts as code: it does not begin,
	// after left-trimming whitespace, with a comment delimiter.
	IsCode bool
}

// Classify splits a raw line into its code and comment segments.
//
// The first occurrence of either delimiter wins, searched left to right.
// The invariant Code + string(Delimiter) + Comment == line holds whenever
// HasComment is true; otherwise Code == line.
func Classify(line string) Segments {
	seg := Segments{Code: line}

	if idx := strings.IndexAny(line, ";&"); idx >= 0 {
		seg.Code = line[:idx]
		seg.Comment = line[idx+1:]
		seg.Delimiter = line[idx]
		seg.HasComment = true
	}

	trimmed := strings.TrimLeft(line, " \t")
	seg.IsCode = !strings.HasPrefix(trimmed, ";") && !strings.HasPrefix(trimmed, "&")

	return seg
}

// Reattach joins a rewritten code segment back to its original comment
// segment, restoring the delimiter verbatim. With no comment present the
// code segment is returned unchanged.
func (s Segments) Reattach(code string) string {
	if !s.HasComment {
		return code
	}
	return code + string(s.Delimiter) + s.Comment
}

// LeadingWhitespace returns the run of spaces and tabs at the start of line.
func LeadingWhitespace(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)]
}
