// Package list provides list components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/grepl/internal/core/domain"
)

// MatchList displays matching lines with a selectable cursor. Each
// match occupies one row: the line number followed by the line text
// with query occurrences highlighted.
type MatchList struct {
	matches  []domain.Match
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates a new match list component.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the match list.
func (l *MatchList) Init() tea.Cmd {
	return nil
}

// Update handles list messages. Key routing happens in the owning
// view, so the list itself is passive.
func (l *MatchList) Update(msg tea.Msg) (*MatchList, tea.Cmd) {
	// List state changes via Set methods and cursor moves
	return l, nil
}

// SetMatches replaces the list contents and resets the selection.
func (l *MatchList) SetMatches(matches []domain.Match) {
	l.matches = matches
	l.selected = 0
}

// Matches returns the current matches.
func (l *MatchList) Matches() []domain.Match {
	return l.matches
}

// Selected returns the selected index.
func (l *MatchList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index if it is in bounds.
func (l *MatchList) SetSelected(index int) {
	if index < 0 || index >= len(l.matches) {
		return
	}
	l.selected = index
}

// SelectedMatch returns the selected match, or nil when the list is
// empty.
func (l *MatchList) SelectedMatch() *domain.Match {
	if l.selected < 0 || l.selected >= len(l.matches) {
		return nil
	}
	return &l.matches[l.selected]
}

// MoveUp moves the selection up.
func (l *MatchList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *MatchList) MoveDown() {
	if l.selected < len(l.matches)-1 {
		l.selected++
	}
}

// Count returns the number of matches.
func (l *MatchList) Count() int {
	return len(l.matches)
}

// IsEmpty returns whether the list has no matches.
func (l *MatchList) IsEmpty() bool {
	return len(l.matches) == 0
}

// SetDimensions sets the display dimensions.
func (l *MatchList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *MatchList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *MatchList) Height() int {
	return l.height
}

// View renders the match list.
func (l *MatchList) View() string {
	if l.IsEmpty() {
		return l.styles.Muted.Render("No matching lines")
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}

	// Keep the selection inside the visible window.
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.matches) {
		end = len(l.matches)
	}

	numWidth := digits(l.matches[len(l.matches)-1].Number)

	var b strings.Builder
	for i := start; i < end; i++ {
		match := l.matches[i]
		b.WriteString(l.renderRow(match, numWidth, i == l.selected))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRow renders one match. The selected row is styled as a whole
// so the cursor reads as a solid bar; other rows highlight the query
// occurrences within the line.
func (l *MatchList) renderRow(match domain.Match, numWidth int, selected bool) string {
	maxText := l.width - numWidth - 4
	if maxText < 10 {
		maxText = 10
	}
	text := truncate(match.Text, maxText)

	if selected {
		row := fmt.Sprintf("> %*d: %s", numWidth, match.Number, text)
		return l.styles.Selected.Render(row)
	}

	number := l.styles.LineNumber.Render(fmt.Sprintf("%*d:", numWidth, match.Number))
	return "  " + number + " " + l.highlight(text, match.Spans)
}

// highlight renders text with the span ranges in the highlight style.
// Spans arrive in order and non-overlapping; offsets beyond the
// (possibly truncated) text are clamped.
func (l *MatchList) highlight(text string, spans []domain.Span) string {
	if len(spans) == 0 {
		return l.styles.Normal.Render(text)
	}

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		start, end := span.Start, span.End
		if start > len(text) {
			start = len(text)
		}
		if end > len(text) {
			end = len(text)
		}
		if start < pos || start >= end {
			continue
		}
		if start > pos {
			b.WriteString(l.styles.Normal.Render(text[pos:start]))
		}
		b.WriteString(l.styles.Highlight.Render(text[start:end]))
		pos = end
	}
	if pos < len(text) {
		b.WriteString(l.styles.Normal.Render(text[pos:]))
	}

	return b.String()
}

// digits returns the printed width of a line number.
func digits(n int) int {
	return len(fmt.Sprintf("%d", n))
}

// truncate shortens a string to a maximum rune count with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
