// Package linter runs the rule set over KRL source files.
//
// The pipeline per file: reset stateful rules → classify each line →
// dispatch the common, code and comment rule buckets → forward findings
// to the reporter. In fix mode each reported finding immediately applies
// that rule's fix to the in-memory buffer, and the buffer is written
// back when the file finishes.
package linter

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/krlwerk/krlstyle/internal/config"
	"github.com/krlwerk/krlstyle/internal/reporter"
	"github.com/krlwerk/krlstyle/internal/rules"
	"github.com/krlwerk/krlstyle/internal/syntax"
)

// Options configures a Linter beyond its required collaborators.
type Options struct {
	// Fix applies rule fixes and writes changed files back.
	Fix bool

	// Log receives per-file diagnostics. Nil means the standard logger.
	Log logrus.FieldLogger
}

// Linter executes the registered rules over files.
type Linter struct {
	cfg      *config.Config
	registry *rules.Registry
	reporter reporter.Reporter
	disabled map[string]struct{}
	fix      bool
	log      logrus.FieldLogger
}

// New creates a linter from its collaborators.
func New(cfg *config.Config, registry *rules.Registry, rep reporter.Reporter, opts Options) *Linter {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Linter{
		cfg:      cfg,
		registry: registry,
		reporter: rep,
		disabled: cfg.Disabled(),
		fix:      opts.Fix,
		log:      log,
	}
}

// Summary totals one Run.
type Summary struct {
	// Files is the number of files linted successfully.
	Files int

	// Findings is the number of findings forwarded to the reporter.
	Findings int

	// Errors is the number of files skipped due to I/O failures.
	Errors int
}

// Run lints every file. A file that cannot be read or written is
// logged and skipped; remaining files are still processed.
func (l *Linter) Run(files []string) Summary {
	var summary Summary
	for _, file := range files {
		findings, err := l.lintFile(file)
		if err != nil {
			l.log.WithField("file", file).WithError(err).Error("skipping file")
			summary.Errors++
			continue
		}
		summary.Files++
		summary.Findings += findings
	}
	l.reporter.Finalize()
	return summary
}

// lintFile reads, lints and, in fix mode, rewrites one file.
func (l *Linter) lintFile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	lines, trailingNewline := splitLines(string(content))

	fixed, findings := l.LintLines(path, lines)
	l.reporter.FinishFile()

	if l.fix && !equalLines(lines, fixed) {
		info, err := os.Stat(path)
		if err != nil {
			return findings, err
		}
		if err := os.WriteFile(path, []byte(joinLines(fixed, trailingNewline)), info.Mode().Perm()); err != nil {
			return findings, fmt.Errorf("write fixed file: %w", err)
		}
	}

	return findings, nil
}

// LintLines lints one file's lines and returns the (possibly fixed)
// lines along with the number of findings reported. Lines carry no
// trailing newline.
func (l *Linter) LintLines(filename string, lines []string) ([]string, int) {
	for _, rule := range l.registry.StatefulRules() {
		rule.Reset()
	}
	l.reporter.StartFile(filename)

	out := make([]string, len(lines))
	copy(out, lines)

	findings := 0
	for i := range out {
		line := out[i]
		for _, rule := range l.registry.All() {
			seg := syntax.Classify(line)

			switch rule.Metadata().Fact {
			case rules.FactCodeLine:
				if !seg.IsCode {
					continue
				}
			case rules.FactCommentLine:
				if !seg.HasComment {
					continue
				}
			}

			input := rules.Input{
				Filename:   filename,
				LineNumber: i,
				Line:       line,
				Code:       seg.Code,
				Comment:    seg.Comment,
				Delimiter:  seg.Delimiter,
				HasComment: seg.HasComment,
				IndentChar: l.cfg.IndentChar,
				IndentSize: l.cfg.IndentSize,
			}

			reported := 0
			for _, finding := range rule.Lint(input) {
				if _, off := l.disabled[finding.Code]; off {
					continue
				}
				l.reporter.Report(reporter.Message{
					Category:   finding.Category,
					LineNumber: i,
					Column:     finding.Column,
					Code:       finding.Code,
					Text:       finding.Message,
				})
				reported++
			}
			findings += reported

			if l.fix && reported > 0 {
				line = rule.Fix(input)
			}
		}
		out[i] = line
	}

	return out, findings
}

// splitLines splits file content into lines without line terminators
// and reports whether the content ended with a newline. CRLF endings
// are normalized to LF.
func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailingNewline := strings.HasSuffix(content, "\n")
	if trailingNewline {
		content = content[:len(content)-1]
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, trailingNewline
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string, trailingNewline bool) string {
	joined := strings.Join(lines, "\n")
	if trailingNewline {
		joined += "\n"
	}
	return joined
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
