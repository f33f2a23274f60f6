// Package styles defines the colour palette and the lipgloss styles
// shared by the TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles draw from.
type Theme struct {
	// Primary accents the title and the selection bar.
	Primary lipgloss.Color

	// Secondary accents subtitles.
	Secondary lipgloss.Color

	// Foreground is the body text colour.
	Foreground lipgloss.Color

	// Muted is for less important text, such as line numbers.
	Muted lipgloss.Color

	// Match is the colour for matched query occurrences.
	Match lipgloss.Color

	// Error colours failure messages.
	Error lipgloss.Color

	// Border frames the input field and containers.
	Border lipgloss.Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#89B4FA"), // Blue
		Secondary:  lipgloss.Color("#94E2D5"), // Teal
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Match:      lipgloss.Color("#F38BA8"), // Red
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles bundles the lipgloss styles the components render with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Normal and Muted cover body text and secondary text.
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// LineNumber renders the line number gutter.
	LineNumber lipgloss.Style

	// Highlight marks query occurrences inside a matched line.
	Highlight lipgloss.Style

	// Selected paints the list entry the cursor is on.
	Selected lipgloss.Style

	Error lipgloss.Style

	// InputField draws the rounded box around the query input.
	InputField lipgloss.Style

	// StatusBar fills the bottom row.
	StatusBar lipgloss.Style

	// Border is a bare rounded frame for anything that needs one.
	Border lipgloss.Style
}

// NewStyles builds the style bundle from a theme, falling back to the
// default palette when theme is nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:     lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:      lipgloss.NewStyle().Foreground(theme.Muted),
		LineNumber: lipgloss.NewStyle().Foreground(theme.Muted),
		Highlight:  lipgloss.NewStyle().Bold(true).Foreground(theme.Match),
		Error:      lipgloss.NewStyle().Foreground(theme.Error),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns the bundle for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme exposes the palette behind the styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
