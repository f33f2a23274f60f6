// Package status renders the bar along the bottom of the live search:
// the file being searched, the case mode, the match count and the key
// hints.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
)

// State selects what the left side of the bar reports.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
)

// Bar displays the searched file, the case mode, the match count and
// keybinding hints.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	state      State
	message    string
	path       string
	ignoreCase bool
	matchCount int
	width      int
}

// NewBar builds the bar, filling in defaults for nil styles or bindings.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init satisfies the component shape; the bar has no start-up command.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update satisfies the component shape. The bar never reacts to
// messages directly, it changes only through its setters.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the bar, key hints pushed to the right edge.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", gap) + right,
	)
}

// renderLeft joins the session segments: path, case mode, then whatever
// the current state calls for.
func (s *Bar) renderLeft() string {
	segments := make([]string, 0, 3)
	if s.path != "" {
		segments = append(segments, s.styles.Subtitle.Render(s.path))
	}
	segments = append(segments, s.styles.Muted.Render(s.caseMode()))

	switch s.state {
	case StateSearching:
		segments = append(segments, s.styles.Muted.Render("Searching..."))
	case StateError:
		if s.message != "" {
			segments = append(segments, s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message)))
		} else {
			segments = append(segments, s.styles.Error.Render("Error"))
		}
	case StateResults:
		segments = append(segments, s.styles.Normal.Render(s.countText()))
	case StateReady:
		segments = append(segments, s.styles.Muted.Render("Ready"))
	}

	return strings.Join(segments, s.styles.Muted.Render(" │ "))
}

// renderRight lists the key hints, swapping in the navigation keys once
// matches are on screen.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.state == StateResults && s.matchCount > 0 {
		bindings = s.keymap.ResultsHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// caseMode describes the active case sensitivity.
func (s *Bar) caseMode() string {
	if s.ignoreCase {
		return "case:insensitive"
	}
	return "case:sensitive"
}

// countText describes the match count.
func (s *Bar) countText() string {
	if s.matchCount == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", s.matchCount)
}

// SetState records the state reported on the left.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the reported state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage records the text shown alongside an error state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the recorded error text.
func (s *Bar) Message() string {
	return s.message
}

// SetPath records the file path shown first in the bar.
func (s *Bar) SetPath(path string) {
	s.path = path
}

// Path returns the displayed file path.
func (s *Bar) Path() string {
	return s.path
}

// SetIgnoreCase records the case mode to display.
func (s *Bar) SetIgnoreCase(ignoreCase bool) {
	s.ignoreCase = ignoreCase
}

// IgnoreCase returns the displayed case mode.
func (s *Bar) IgnoreCase() bool {
	return s.ignoreCase
}

// SetMatchCount records how many lines the last query matched.
func (s *Bar) SetMatchCount(count int) {
	s.matchCount = count
}

// MatchCount returns the recorded match count.
func (s *Bar) MatchCount() int {
	return s.matchCount
}

// SetWidth resizes the bar to the terminal width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear returns the bar to idle. The path and case mode survive; they
// describe the session, not the query.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.matchCount = 0
}
