package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// themeSwatches names every palette entry so the coverage tests stay in
// step with the Theme struct.
func themeSwatches(theme *Theme) map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Match":      theme.Match,
		"Error":      theme.Error,
		"Border":     theme.Border,
	}
}

func TestDefaultTheme_EverySwatchSet(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	for name, swatch := range themeSwatches(theme) {
		assert.NotEmpty(t, string(swatch), "swatch %s", name)
	}
}

func TestDefaultTheme_TextSwatchesAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	// Match and Error deliberately share a hue, so only the text roles
	// need to stay tellable apart.
	distinct := map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Border":     theme.Border,
	}

	seen := make(map[lipgloss.Color]string)
	for name, swatch := range distinct {
		if prev, dup := seen[swatch]; dup {
			t.Errorf("%s and %s share colour %s", prev, name, swatch)
		}
		seen[swatch] = name
	}
}

func TestDefaultTheme_HighlightMatchesErrorHue(t *testing.T) {
	theme := DefaultTheme()

	// Matched text and errors share the red so highlighted occurrences
	// read the same in the list and the text writer.
	assert.Equal(t, theme.Match, theme.Error)
}

func TestNewStyles_KeepsGivenTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Same(t, theme, styles.Theme())
}

func TestNewStyles_NilThemeFallsBack(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.Equal(t, DefaultTheme(), styles.Theme())
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	require.NotNil(t, styles)
	assert.Equal(t, DefaultTheme(), styles.Theme())
}

func TestStyles_EveryStyleRenders(t *testing.T) {
	styles := DefaultStyles()

	table := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Subtitle", styles.Subtitle},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"LineNumber", styles.LineNumber},
		{"Highlight", styles.Highlight},
		{"Selected", styles.Selected},
		{"Error", styles.Error},
		{"InputField", styles.InputField},
		{"StatusBar", styles.StatusBar},
		{"Border", styles.Border},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, lipgloss.Style{}, tc.style, "style left at zero value")
			assert.NotEmpty(t, tc.style.Render("wild nights"))
		})
	}
}
