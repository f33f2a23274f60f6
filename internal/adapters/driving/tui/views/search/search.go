// Package search provides the live search view for the TUI.
//
// The query input stays focused for the lifetime of the view: every
// keystroke refines the query and re-runs the search, the way an
// interactive filter behaves. An empty query lists every line of the
// file.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
)

// watchStarted carries the change channels once watching begins. The
// watch is armed from a command, so the channels arrive as a message
// rather than being stored on the view directly.
type watchStarted struct {
	changes <-chan domain.Change
	errs    <-chan error
}

// View represents the live search view with input, match list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.MatchList
	statusbar *status.Bar

	searchService driving.SearchService
	source        driven.DocumentSource
	ctx           context.Context

	path       string
	ignoreCase bool

	// seq numbers searches so results arriving out of order are
	// discarded rather than displayed.
	seq int

	changes  <-chan domain.Change
	errs     <-chan error
	watching bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view for one file.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	source driven.DocumentSource,
	path string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	statusbar := status.NewBar(s, km)
	statusbar.SetPath(path)

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewMatchList(s),
		statusbar:     statusbar,
		searchService: searchService,
		source:        source,
		ctx:           context.Background(),
		path:          path,
		width:         80,
		height:        24,
		ready:         false,
	}
}

// WithContext attaches the context searches and watches run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor, runs the initial search and arms the file
// watch. The initial search has an empty query, so the whole file is
// listed straight away.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.performSearch(), v.startWatch())
}

// Update routes messages: window and key events, search results, and
// the watch lifecycle.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case watchStarted:
		v.changes = msg.changes
		v.errs = msg.errs
		v.watching = true
		return v, v.waitForChange()

	case messages.DocumentChanged:
		if msg.Change.Type == domain.ChangeDeleted {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("file removed: " + msg.Change.Path)
			return v, v.waitForChange()
		}
		return v, tea.Batch(v.performSearch(), v.waitForChange())

	case messages.WatchFailed:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("watch: " + msg.Err.Error())
		return v, v.waitForChange()

	case messages.WatchStopped:
		v.watching = false
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Anything unrecognised goes on to the components.
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input. Bound keys act on the view;
// everything else flows into the query input, and a changed query
// re-runs the search.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.ToggleCase):
		v.ignoreCase = !v.ignoreCase
		v.statusbar.SetIgnoreCase(v.ignoreCase)
		return v, v.performSearch()

	case keymap.Matches(msg.String(), v.keymap.Clear):
		if v.input.Value() == "" {
			return v, nil
		}
		v.input.Reset()
		return v, v.performSearch()

	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.performSearch())
	}
	return v, cmd
}

// performSearch starts a search for the current query. The request
// fields are copied into the closure: the view may change while the
// search runs.
func (v *View) performSearch() tea.Cmd {
	v.seq++
	v.statusbar.SetState(status.StateSearching)

	ctx := v.ctx
	service := v.searchService
	seq := v.seq
	request := domain.SearchRequest{
		Query: v.input.Value(),
		Path:  v.path,
		Options: domain.SearchOptions{
			IgnoreCase: v.ignoreCase,
		},
	}

	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		set, err := service.Search(ctx, request)
		return messages.SearchCompleted{Seq: seq, Set: set, Err: err}
	}
}

// handleSearchCompleted folds a finished search into the list and the
// status bar, unless it has been superseded.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		// A newer search is in flight; drop the stale result.
		return
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetMatches(msg.Set.Matches)
	v.statusbar.SetMatchCount(msg.Set.Count())
	v.statusbar.SetState(status.StateResults)
}

// startWatch arms the file watch when a document source is available.
func (v *View) startWatch() tea.Cmd {
	if v.source == nil {
		return nil
	}

	ctx := v.ctx
	source := v.source
	path := v.path

	return func() tea.Msg {
		changes, errs, err := source.Watch(ctx, path)
		if err != nil {
			return messages.WatchFailed{Err: err}
		}
		return watchStarted{changes: changes, errs: errs}
	}
}

// waitForChange blocks on the watch channels and converts the next
// event into a message. Update re-arms it after each event.
func (v *View) waitForChange() tea.Cmd {
	changes, errs := v.changes, v.errs
	if changes == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case change, ok := <-changes:
			if !ok {
				return messages.WatchStopped{}
			}
			return messages.DocumentChanged{Change: change}
		case err, ok := <-errs:
			if !ok {
				return messages.WatchStopped{}
			}
			return messages.WatchFailed{Err: err}
		}
	}
}

// View stacks the components: header, input, an error row when one is
// pending, the match list, and the status bar last.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("grepl"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions resizes the view and its components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	// Header, input, spacing and the status bar take eight rows between them.
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// SetIgnoreCase sets the case sensitivity for subsequent searches.
func (v *View) SetIgnoreCase(ignoreCase bool) {
	v.ignoreCase = ignoreCase
	v.statusbar.SetIgnoreCase(ignoreCase)
}

// IgnoreCase returns the active case sensitivity.
func (v *View) IgnoreCase() bool {
	return v.ignoreCase
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready reports whether a window size has arrived yet.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns what the input currently holds.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery replaces the input's contents.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Path returns the file being searched.
func (v *View) Path() string {
	return v.path
}

// Matches returns the currently listed matches.
func (v *View) Matches() []domain.Match {
	return v.list.Matches()
}

// SelectedIndex returns the index of the selected match.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedMatch returns the currently selected match.
func (v *View) SelectedMatch() *domain.Match {
	return v.list.SelectedMatch()
}

// Watching returns whether the file watch is active.
func (v *View) Watching() bool {
	return v.watching
}

// Err returns the pending error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError wipes the pending error and returns the bar to idle.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset clears the query, the matches and any error.
func (v *View) Reset() {
	v.input.SetValue("")
	v.list.SetMatches(nil)
	v.err = nil
	v.statusbar.Clear()
}

// Seq returns the sequence number of the latest search, exposed for
// testing.
func (v *View) Seq() int {
	return v.seq
}

// Statusbar returns the status bar, exposed for testing.
func (v *View) Statusbar() *status.Bar {
	return v.statusbar
}
