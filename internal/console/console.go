// Package console renders harness output: styled headings via lipgloss and
// locale-aware number formatting via golang.org/x/text.
//
// Styling degrades to plain text when the writer is not a terminal, so the
// same code path serves interactive use and tests writing to a buffer.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

// Console writes formatted output to one writer.
type Console struct {
	out     io.Writer
	printer *message.Printer
	styles  styles
}

// New returns a Console that detects the color profile of w.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		out:     w,
		printer: message.NewPrinter(language.English),
		styles: styles{
			title:   r.NewStyle().Bold(true).Foreground(colorAccent),
			section: r.NewStyle().Bold(true),
			success: r.NewStyle().Foreground(colorSuccess),
			warning: r.NewStyle().Foreground(colorWarning),
			err:     r.NewStyle().Foreground(colorError),
			muted:   r.NewStyle().Foreground(colorMuted),
			box: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1),
		},
	}
}

// Writer exposes the underlying writer.
func (c *Console) Writer() io.Writer { return c.out }

func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// Title prints a boxed heading.
func (c *Console) Title(text string) {
	c.Println(c.styles.box.Render(c.styles.title.Render(text)))
}

// Section prints "\n--- text ---" in bold.
func (c *Console) Section(text string) {
	c.Println()
	c.Println(c.styles.section.Render("--- " + text + " ---"))
}

func (c *Console) Success(text string) { c.Println(c.styles.success.Render(text)) }
func (c *Console) Warning(text string) { c.Println(c.styles.warning.Render(text)) }
func (c *Console) Error(text string)   { c.Println(c.styles.err.Render(text)) }
func (c *Console) Muted(text string)   { c.Println(c.styles.muted.Render(text)) }

// Count formats n with English digit grouping (1,000,000).
func (c *Console) Count(n uint64) string {
	return c.printer.Sprintf("%d", n)
}
