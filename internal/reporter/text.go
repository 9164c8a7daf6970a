package reporter

import (
	"fmt"
	"io"
)

// TextReporter prints findings as plain text, one line per finding,
// under a banner naming the file. The banner appears only for files
// that have findings.
type TextReporter struct {
	w            io.Writer
	filename     string
	firstMessage bool
}

// NewTextReporter creates a plain text reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// StartFile remembers the file name for the banner.
func (r *TextReporter) StartFile(filename string) {
	r.filename = filename
	r.firstMessage = true
}

// Report prints one finding, preceded by the file banner on the first
// finding of the file.
func (r *TextReporter) Report(message Message) {
	if r.firstMessage {
		fmt.Fprintf(r.w, "***** %s\n", r.filename)
		r.firstMessage = false
	}
	fmt.Fprintf(r.w, "%d:%d: %s [%s]\n",
		message.LineNumber+1, message.Column+1, message.Text, message.Code)
}

// FinishFile implements Reporter.
func (r *TextReporter) FinishFile() {}

// Finalize implements Reporter.
func (r *TextReporter) Finalize() {}
