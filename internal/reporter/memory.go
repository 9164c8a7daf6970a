package reporter

import "github.com/krlwerk/krlstyle/internal/rules"

// MemoryReporter collects messages and per-category counts in memory.
// Used by tests and by callers that post-process findings themselves.
type MemoryReporter struct {
	Messages    []Message
	FoundIssues map[rules.Category]int

	filename string
}

// NewMemoryReporter creates an empty in-memory reporter.
func NewMemoryReporter() *MemoryReporter {
	counts := make(map[rules.Category]int, len(rules.Categories))
	for _, category := range rules.Categories {
		counts[category] = 0
	}
	return &MemoryReporter{FoundIssues: counts}
}

// StartFile implements Reporter.
func (r *MemoryReporter) StartFile(filename string) {
	r.filename = filename
}

// CurrentFile returns the file most recently started.
func (r *MemoryReporter) CurrentFile() string {
	return r.filename
}

// Report stores the message and bumps its category count.
func (r *MemoryReporter) Report(message Message) {
	r.Messages = append(r.Messages, message)
	r.FoundIssues[message.Category]++
}

// FinishFile implements Reporter.
func (r *MemoryReporter) FinishFile() {}

// Finalize implements Reporter.
func (r *MemoryReporter) Finalize() {}
