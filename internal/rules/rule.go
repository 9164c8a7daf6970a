// Package rules defines the rule abstraction for KRL style checking:
// rule metadata, the line facts a rule inspects, and the findings it
// produces.
package rules

// Fact names the slice of a physical line a rule wants to inspect.
type Fact int

const (
	// FactNone marks a rule that is never dispatched.
	FactNone Fact = iota

	// FactLine dispatches the rule for every physical line.
	FactLine

	// FactCodeLine dispatches the rule for lines whose code segment is
	// not empty of meaning, passing only the code segment.
	FactCodeLine

	// FactCommentLine dispatches the rule for lines carrying a comment,
	// passing only the comment segment.
	FactCommentLine
)

func (f Fact) String() string {
	switch f {
	case FactLine:
		return "common"
	case FactCodeLine:
		return "code"
	case FactCommentLine:
		return "comment"
	default:
		return "none"
	}
}

// Input is the per-line context handed to a rule. LineNumber is
// zero-based; reporters add one for display.
type Input struct {
	Filename   string
	LineNumber int

	// Line is the full physical line without its trailing newline.
	Line string

	// Code and Comment are the segments split at the first comment
	// delimiter. Delimiter is the byte that split them, valid only when
	// HasComment is true.
	Code       string
	Comment    string
	Delimiter  byte
	HasComment bool

	IndentChar string
	IndentSize int
}

// ReattachComment joins a rewritten code segment back with the original
// comment, preserving the delimiter that introduced it.
func (in Input) ReattachComment(code string) string {
	if !in.HasComment {
		return code
	}
	return code + string(in.Delimiter) + in.Comment
}

// Finding is one style issue located on the inspected line. Column is
// zero-based.
type Finding struct {
	Category Category `json:"category"`
	Column   int      `json:"column"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// RuleMetadata describes a rule for registration, reporting and
// configuration.
type RuleMetadata struct {
	// Name is the stable identifier used in configuration.
	Name string

	// Code is the issue code attached to findings. ExtraCodes lists
	// additional codes the rule may emit.
	Code       string
	ExtraCodes []string

	Description string

	DefaultCategory Category

	// Fact selects the dispatch bucket the rule runs in.
	Fact Fact
}

// Rule checks one line fact and optionally rewrites it.
type Rule interface {
	Metadata() RuleMetadata

	// Lint inspects the input and returns any findings, ordered by
	// column.
	Lint(input Input) []Finding

	// Fix returns the corrected form of the inspected segment. Rules
	// with nothing to fix return the segment unchanged.
	Fix(input Input) string
}

// StatefulRule carries state across the lines of one file. The engine
// calls Reset before the first line of each file.
type StatefulRule interface {
	Rule
	Reset()
}
