// Package reporter renders lint findings for human or programmatic
// consumption.
package reporter

import (
	"fmt"
	"io"

	"github.com/krlwerk/krlstyle/internal/rules"
)

// Message is one finding attached to a position. LineNumber and Column
// are zero-based; renderers add one for display.
type Message struct {
	Category   rules.Category
	LineNumber int
	Column     int
	Code       string
	Text       string
}

// Reporter receives findings file by file. StartFile is called before
// the first message of a file, FinishFile after its last, Finalize once
// after all files.
type Reporter interface {
	StartFile(filename string)
	Report(message Message)
	FinishFile()
	Finalize()
}

// Reporter names accepted by New and the configuration.
const (
	TextReporterName      = "text"
	ColorizedReporterName = "colorized"
)

// Names lists the reporters selectable by configuration.
var Names = []string{TextReporterName, ColorizedReporterName}

// New creates the named reporter writing to w.
func New(name string, w io.Writer) (Reporter, error) {
	switch name {
	case TextReporterName:
		return NewTextReporter(w), nil
	case ColorizedReporterName:
		return NewColorizedReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown reporter %q", name)
	}
}
