package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
)

var _ driven.ResultWriter = (*TextWriter)(nil)

// TextOptions control how a TextWriter renders matches.
type TextOptions struct {
	// LineNumbers prefixes each line with its 1-based line number.
	LineNumbers bool
	// CountOnly suppresses the lines and prints only the match count.
	CountOnly bool
	// Colour highlights the matched spans within each line.
	Colour bool
}

// TextWriter renders matches as plain lines, one per match.
type TextWriter struct {
	out  io.Writer
	opts TextOptions

	matchStyle  lipgloss.Style
	numberStyle lipgloss.Style
}

// NewTextWriter creates a text writer targeting out. When colour is
// requested but out is not a terminal, a colour profile is forced so
// "--colour always" still emits escape codes into pipes.
func NewTextWriter(out io.Writer, opts TextOptions) *TextWriter {
	renderer := lipgloss.NewRenderer(out)
	if opts.Colour && renderer.ColorProfile() == termenv.Ascii {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return &TextWriter{
		out:         out,
		opts:        opts,
		matchStyle:  renderer.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true), // Red
		numberStyle: renderer.NewStyle().Foreground(lipgloss.Color("#6C7086")),            // Medium gray
	}
}

// Write renders the match set. A write failure is returned to the
// caller; partial output may already have been flushed.
func (w *TextWriter) Write(set domain.MatchSet) error {
	if w.opts.CountOnly {
		if _, err := fmt.Fprintf(w.out, "%d\n", set.Count()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	for _, match := range set.Matches {
		text := match.Text
		if w.opts.Colour {
			text = highlight(match.Text, match.Spans, w.matchStyle)
		}

		var err error
		if w.opts.LineNumbers {
			number := strconv.Itoa(match.Number)
			if w.opts.Colour {
				number = w.numberStyle.Render(number)
			}
			_, err = fmt.Fprintf(w.out, "%s:%s\n", number, text)
		} else {
			_, err = fmt.Fprintf(w.out, "%s\n", text)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

// highlight renders the matched spans of a line in the given style,
// leaving the rest of the line untouched. Spans that fall outside the
// line or overlap a previous span are skipped.
func highlight(text string, spans []domain.Span, style lipgloss.Style) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span.Start < last || span.End < span.Start || span.End > len(text) {
			continue
		}
		b.WriteString(text[last:span.Start])
		b.WriteString(style.Render(text[span.Start:span.End]))
		last = span.End
	}
	b.WriteString(text[last:])
	return b.String()
}
