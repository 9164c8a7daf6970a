package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/krlwerk/krlstyle/internal/rules"
)

// ColorizedReporter prints findings styled per category and a final
// per-category tally. Color capability is detected from the writer, so
// redirected output degrades to plain text.
type ColorizedReporter struct {
	w            io.Writer
	filename     string
	firstMessage bool

	banner lipgloss.Style
	styles map[rules.Category]lipgloss.Style
	counts map[rules.Category]int
}

// NewColorizedReporter creates a colorized reporter writing to w.
func NewColorizedReporter(w io.Writer) *ColorizedReporter {
	renderer := lipgloss.NewRenderer(w)

	magenta := lipgloss.Color("5")
	red := lipgloss.Color("1")
	yellow := lipgloss.Color("3")

	return &ColorizedReporter{
		w:      w,
		banner: renderer.NewStyle().Foreground(yellow).Reverse(true),
		styles: map[rules.Category]lipgloss.Style{
			rules.CategoryConvention: renderer.NewStyle().Bold(true),
			rules.CategoryRefactor:   renderer.NewStyle().Foreground(magenta).Bold(true),
			rules.CategoryWarning:    renderer.NewStyle().Foreground(magenta),
			rules.CategoryError:      renderer.NewStyle().Foreground(red).Bold(true),
			rules.CategoryFatal:      renderer.NewStyle().Foreground(red).Bold(true).Reverse(true),
		},
		counts: make(map[rules.Category]int),
	}
}

// StartFile remembers the file name for the banner.
func (r *ColorizedReporter) StartFile(filename string) {
	r.filename = filename
	r.firstMessage = true
}

// Report prints one styled finding, preceded by the file banner on the
// first finding of the file.
func (r *ColorizedReporter) Report(message Message) {
	if r.firstMessage {
		fmt.Fprintln(r.w, r.banner.Render(fmt.Sprintf("***** %s", r.filename)))
		r.firstMessage = false
	}

	style := r.styles[message.Category]
	fmt.Fprintf(r.w, "%d:%d: %s [%s]\n",
		message.LineNumber+1, message.Column+1, style.Render(message.Text), message.Code)
	r.counts[message.Category]++
}

// FinishFile implements Reporter.
func (r *ColorizedReporter) FinishFile() {}

// Finalize prints the per-category tally of everything reported.
func (r *ColorizedReporter) Finalize() {
	total := 0
	for _, count := range r.counts {
		total += count
	}
	if total == 0 {
		return
	}

	fmt.Fprintln(r.w)
	for _, category := range rules.Categories {
		if count := r.counts[category]; count > 0 {
			fmt.Fprintf(r.w, "%s: %d\n", category, count)
		}
	}
}
