package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/grepl/internal/core/domain"
)

// App is the root Bubbletea model. The programme is a single live
// search view over one file, so App keeps only the terminal size and
// global quit handling for itself and relays everything else.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView *search.View

	width  int
	height int

	// ready flips once the first window size arrives.
	ready bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application searching the given file.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w: %w", ErrInvalidPorts, err)
	}
	if path == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingPath)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	searchView := search.NewView(s, km, ports.Search, ports.Source, path)

	app := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		searchView: searchView,
	}
	app.applySettings()

	return app, nil
}

// applySettings seeds the view from persisted settings when available.
func (a *App) applySettings() {
	if a.ports.Settings == nil {
		return
	}

	settings, err := a.ports.Settings.Settings()
	if err != nil {
		return
	}
	a.searchView.SetIgnoreCase(settings.IgnoreCase)
}

// WithContext attaches the context the view's searches and watches
// run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("grepl"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// ctrl+c quits from anywhere.
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else belongs to the view.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model. Until the first window size arrives
// there is no geometry to draw with.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return a.searchView.View()
}

// Run hands the model to a Bubbletea programme and blocks until it
// exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns what the input currently holds.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Matches returns the currently listed matches.
func (a *App) Matches() []domain.Match {
	return a.searchView.Matches()
}

// SelectedIndex returns the currently selected match index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// IgnoreCase returns the active case sensitivity.
func (a *App) IgnoreCase() bool {
	return a.searchView.IgnoreCase()
}

// Path returns the file being searched.
func (a *App) Path() string {
	return a.searchView.Path()
}

// Err returns the view's pending error, if any.
func (a *App) Err() error {
	return a.searchView.Err()
}

// Ready reports whether a window size has arrived yet.
func (a *App) Ready() bool {
	return a.ready
}

// SearchView returns the search view, exposed for testing.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// SetDimensions fixes the terminal size without a real window, which
// tests need.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// The view keeps its own ready flag, so size it too.
	a.searchView.SetDimensions(width, height)
}
