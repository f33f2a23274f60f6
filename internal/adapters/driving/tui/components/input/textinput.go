// Package input provides the query entry component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
)

const (
	// defaultWidth is the field width before the first WindowSizeMsg.
	defaultWidth = 50

	// labelReserve leaves room for the "Search: " label and padding.
	labelReserve = 10

	// minFieldWidth keeps the field usable in narrow terminals.
	minFieldWidth = 20

	// queryLimit caps the query length; a line search needle never
	// realistically approaches it.
	queryLimit = 256
)

// SearchInput wraps a bubbles textinput for live query entry. It stays
// focused for the lifetime of the view so every printable key refines
// the query.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput creates a search input with the query field focused.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "Type to search..."
	field.CharLimit = queryLimit
	field.Width = defaultWidth
	field.Focus()

	return &SearchInput{
		field:  field,
		styles: s,
		width:  defaultWidth,
	}
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the underlying field.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

// View renders the labelled query field.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	field := s.styles.InputField.Render(s.field.View())
	//nolint:misspell // lipgloss spells Center the American way
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current query text.
func (s *SearchInput) Value() string {
	return s.field.Value()
}

// SetValue replaces the query text, leaving the cursor at the end.
func (s *SearchInput) SetValue(value string) {
	s.field.SetValue(value)
}

// Reset clears the query.
func (s *SearchInput) Reset() {
	s.field.Reset()
}

// SetWidth resizes the field to the available width.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-labelReserve, minFieldWidth)
}

// Width returns the width last given to SetWidth.
func (s *SearchInput) Width() int {
	return s.width
}
