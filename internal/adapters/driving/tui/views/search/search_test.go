package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/grepl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/grepl/internal/core/domain"
)

const testPath = "poem.txt"

// MockSearchService stands in for driving.SearchService; unset funcs
// answer with benign defaults.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error)
}

func (m *MockSearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return domain.MatchSet{Path: req.Path, Query: req.Query}, nil
}

// MockDocumentSource stands in for driven.DocumentSource. Its default
// Watch hands back already-closed channels.
type MockDocumentSource struct {
	LoadFunc  func(ctx context.Context, path string) (domain.Document, error)
	WatchFunc func(ctx context.Context, path string) (<-chan domain.Change, <-chan error, error)
}

func (m *MockDocumentSource) Load(ctx context.Context, path string) (domain.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, path)
	}
	return domain.Document{Path: path}, nil
}

func (m *MockDocumentSource) Watch(
	ctx context.Context,
	path string,
) (<-chan domain.Change, <-chan error, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, path)
	}
	changes := make(chan domain.Change)
	errs := make(chan error)
	close(changes)
	close(errs)
	return changes, errs, nil
}

// Helper function to create test matches.
func poemMatches() []domain.Match {
	return []domain.Match{
		{Number: 1, Text: "I'm nobody! Who are you?", Spans: []domain.Span{{Start: 4, End: 10}}},
		{Number: 2, Text: "Are you nobody, too?", Spans: []domain.Span{{Start: 8, End: 14}}},
	}
}

func poemSet() domain.MatchSet {
	return domain.MatchSet{
		Path:    testPath,
		Query:   "nobody",
		Matches: poemMatches(),
	}
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	mock := &MockSearchService{}

	view := NewView(s, km, mock, nil, testPath)

	require.NotNil(t, view)
	assert.False(t, view.Ready())
	assert.Equal(t, "", view.Query())
	assert.Equal(t, testPath, view.Path())
	assert.False(t, view.IgnoreCase())
	assert.False(t, view.Watching())
	assert.Equal(t, 0, view.Seq())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
}

func TestNewView_SetsStatusbarPath(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Equal(t, testPath, view.Statusbar().Path())
}

func TestView_WithContext(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := view.WithContext(ctx)

	assert.Equal(t, view, result)
	assert.Equal(t, ctx, view.ctx)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	cmd := view.Init()

	require.NotNil(t, cmd)
	// Init schedules the initial search, listing the whole file.
	assert.Equal(t, 1, view.Seq())
}

func TestView_Init_NoSource(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	cmd := view.Init()

	assert.NotNil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.Ready())
	assert.Equal(t, 80, view.Width())
	assert.Equal(t, 24, view.Height())
}

func TestView_Update_CharacterInput(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	_, cmd := view.Update(msg)

	assert.Equal(t, "a", view.Query())
	// Every keystroke that changes the query starts a new search.
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, view.Seq())
}

func TestView_Update_TypingRefinesSearch(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	for _, r := range "nobody" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "nobody", view.Query())
	assert.Equal(t, 6, view.Seq())
}

func TestView_Update_Backspace(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	view.SetQuery("test")

	msg := tea.KeyMsg{Type: tea.KeyBackspace}
	_, cmd := view.Update(msg)

	assert.Equal(t, "tes", view.Query())
	// Shrinking the query re-runs the search too.
	assert.NotNil(t, cmd)
}

func TestView_Update_KeyWithoutValueChange(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	view.SetQuery("test")
	seqBefore := view.Seq()

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Enter leaves the query untouched, so no new search starts.
	assert.Equal(t, "test", view.Query())
	assert.Equal(t, seqBefore, view.Seq())
}

func TestView_Update_ToggleCase(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	msg := tea.KeyMsg{Type: tea.KeyCtrlT}
	_, cmd := view.Update(msg)

	assert.True(t, view.IgnoreCase())
	assert.True(t, view.Statusbar().IgnoreCase())
	assert.NotNil(t, cmd)

	view.Update(msg)
	assert.False(t, view.IgnoreCase())
}

func TestView_Update_ToggleCase_PassesOptionToService(t *testing.T) {
	var captured domain.SearchRequest
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
			captured = req
			return domain.MatchSet{}, nil
		},
	}
	view := NewView(nil, nil, mock, nil, testPath)
	view.SetQuery("nobody")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	require.NotNil(t, cmd)
	result := cmd()
	assert.IsType(t, messages.SearchCompleted{}, result)
	assert.Equal(t, "nobody", captured.Query)
	assert.Equal(t, testPath, captured.Path)
	assert.True(t, captured.Options.IgnoreCase)
}

func TestView_Update_EscapeClearsQuery(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	view.SetQuery("test")

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	_, cmd := view.Update(msg)

	assert.Equal(t, "", view.Query())
	// Clearing re-runs the search to list the whole file again.
	assert.NotNil(t, cmd)
}

func TestView_Update_EscapeWithEmptyQuery(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	seqBefore := view.Seq()

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
	assert.Equal(t, seqBefore, view.Seq())
}

func TestView_Update_KeyDown(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(messages.SearchCompleted{Set: poemSet()})

	msg := tea.KeyMsg{Type: tea.KeyDown}
	view.Update(msg)

	assert.Equal(t, 1, view.SelectedIndex())
}

func TestView_Update_KeyUp(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(messages.SearchCompleted{Set: poemSet()})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.SelectedIndex())

	msg := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(msg)

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Update_KeyCtrlN(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(messages.SearchCompleted{Set: poemSet()})

	// ctrl+n navigates without touching the query.
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, 1, view.SelectedIndex())
	assert.Equal(t, "", view.Query())
}

func TestView_Update_KeyCtrlP(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(messages.SearchCompleted{Set: poemSet()})
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlP})

	assert.Equal(t, 0, view.SelectedIndex())
	assert.Equal(t, "", view.Query())
}

func TestView_Update_SearchCompleted(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)

	msg := messages.SearchCompleted{Set: poemSet()}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Len(t, view.Matches(), 2)
	assert.Equal(t, 0, view.SelectedIndex())
	assert.Equal(t, status.StateResults, view.Statusbar().State())
	assert.Equal(t, 2, view.Statusbar().MatchCount())
}

func TestView_Update_SearchCompleted_WithError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)

	err := errors.New("search failed")
	msg := messages.SearchCompleted{Err: err}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Error(t, view.Err())
	assert.Equal(t, status.StateError, view.Statusbar().State())
}

func TestView_Update_SearchCompleted_DropsStaleResult(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.seq = 2

	// An older search finishing late must not clobber newer results.
	msg := messages.SearchCompleted{Seq: 1, Set: poemSet()}
	view.Update(msg)

	assert.Nil(t, view.Matches())
}

func TestView_Update_SearchCompleted_ClearsError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)
	view.err = errors.New("previous error")

	msg := messages.SearchCompleted{Set: poemSet()}
	view.Update(msg)

	assert.Nil(t, view.Err())
}

func TestView_Update_ErrorOccurred(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	err := errors.New("something went wrong")
	msg := messages.ErrorOccurred{Err: err}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Error(t, view.Err())
	assert.Equal(t, status.StateError, view.Statusbar().State())
}

func TestView_PerformSearch_NoService(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetQuery("test")

	cmd := view.performSearch()

	require.NotNil(t, cmd)
	result := cmd()

	assert.IsType(t, messages.ErrorOccurred{}, result)
	errMsg := result.(messages.ErrorOccurred)
	assert.Equal(t, ErrNoSearchService, errMsg.Err)
}

func TestView_PerformSearch_ServiceError(t *testing.T) {
	expectedErr := errors.New("search service error")
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
			return domain.MatchSet{}, expectedErr
		},
	}
	view := NewView(nil, nil, mock, nil, testPath)
	view.SetQuery("test")

	cmd := view.performSearch()

	require.NotNil(t, cmd)
	result := cmd()

	assert.IsType(t, messages.SearchCompleted{}, result)
	completed := result.(messages.SearchCompleted)
	assert.Error(t, completed.Err)
}

func TestView_PerformSearch_Success(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
			return poemSet(), nil
		},
	}
	view := NewView(nil, nil, mock, nil, testPath)
	view.SetQuery("nobody")

	cmd := view.performSearch()

	require.NotNil(t, cmd)
	result := cmd()

	completed, ok := result.(messages.SearchCompleted)
	require.True(t, ok)
	assert.NoError(t, completed.Err)
	assert.Equal(t, view.Seq(), completed.Seq)
	assert.Equal(t, 2, completed.Set.Count())
}

func TestView_PerformSearch_EmptyQueryListsFile(t *testing.T) {
	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
			searchCalled = true
			// An empty query is a valid request matching every line.
			assert.Equal(t, "", req.Query)
			return poemSet(), nil
		},
	}
	view := NewView(nil, nil, mock, nil, testPath)

	cmd := view.performSearch()

	require.NotNil(t, cmd)
	cmd()
	assert.True(t, searchCalled)
}

func TestView_PerformSearch_SetsSearchingState(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)

	view.performSearch()

	assert.Equal(t, status.StateSearching, view.Statusbar().State())
}

func TestView_ContextPropagation(t *testing.T) {
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("test"), "value")

	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(receivedCtx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
			searchCalled = true
			// The service must see the context given to WithContext.
			val := receivedCtx.Value(contextKey("test"))
			assert.Equal(t, "value", val)
			return poemSet(), nil
		},
	}

	view := NewView(nil, nil, mock, nil, testPath).WithContext(ctx)
	view.SetQuery("test")

	cmd := view.performSearch()
	require.NotNil(t, cmd)
	cmd() // Execute the search command

	assert.True(t, searchCalled)
}

// Watch tests

func TestView_StartWatch_NoSource(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	cmd := view.startWatch()

	assert.Nil(t, cmd)
}

func TestView_StartWatch_Success(t *testing.T) {
	source := &MockDocumentSource{
		WatchFunc: func(ctx context.Context, path string) (<-chan domain.Change, <-chan error, error) {
			assert.Equal(t, testPath, path)
			changes := make(chan domain.Change)
			errs := make(chan error)
			return changes, errs, nil
		},
	}
	view := NewView(nil, nil, nil, source, testPath)

	cmd := view.startWatch()

	require.NotNil(t, cmd)
	result := cmd()
	assert.IsType(t, watchStarted{}, result)
}

func TestView_StartWatch_Error(t *testing.T) {
	expectedErr := errors.New("inotify exhausted")
	source := &MockDocumentSource{
		WatchFunc: func(ctx context.Context, path string) (<-chan domain.Change, <-chan error, error) {
			return nil, nil, expectedErr
		},
	}
	view := NewView(nil, nil, nil, source, testPath)

	cmd := view.startWatch()

	require.NotNil(t, cmd)
	result := cmd()

	failed, ok := result.(messages.WatchFailed)
	require.True(t, ok)
	assert.Equal(t, expectedErr, failed.Err)
}

func TestView_Update_WatchStarted(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	changes := make(chan domain.Change)
	errs := make(chan error)

	msg := watchStarted{changes: changes, errs: errs}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.True(t, view.Watching())
	// The view immediately starts waiting for the first change.
	assert.NotNil(t, cmd)
}

func TestView_Update_DocumentChanged_RerunsSearch(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	seqBefore := view.Seq()

	msg := messages.DocumentChanged{
		Change: domain.Change{Type: domain.ChangeUpdated, Path: testPath},
	}
	_, cmd := view.Update(msg)

	assert.NotNil(t, cmd)
	assert.Equal(t, seqBefore+1, view.Seq())
}

func TestView_Update_DocumentChanged_Deleted(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	seqBefore := view.Seq()

	msg := messages.DocumentChanged{
		Change: domain.Change{Type: domain.ChangeDeleted, Path: testPath},
	}
	view.Update(msg)

	// A removed file is reported, not searched.
	assert.Equal(t, status.StateError, view.Statusbar().State())
	assert.Contains(t, view.Statusbar().Message(), "file removed")
	assert.Equal(t, seqBefore, view.Seq())
}

func TestView_Update_WatchFailed(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	msg := messages.WatchFailed{Err: errors.New("watcher overflow")}
	view.Update(msg)

	assert.Equal(t, status.StateError, view.Statusbar().State())
	assert.Contains(t, view.Statusbar().Message(), "watch")
}

func TestView_Update_WatchStopped(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(watchStarted{changes: make(chan domain.Change), errs: make(chan error)})
	require.True(t, view.Watching())

	view.Update(messages.WatchStopped{})

	assert.False(t, view.Watching())
}

func TestView_WaitForChange_NilChannels(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	cmd := view.waitForChange()

	assert.Nil(t, cmd)
}

func TestView_WaitForChange_DeliversChange(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	changes := make(chan domain.Change, 1)
	errs := make(chan error)
	changes <- domain.Change{Type: domain.ChangeUpdated, Path: testPath}
	view.Update(watchStarted{changes: changes, errs: errs})

	cmd := view.waitForChange()

	require.NotNil(t, cmd)
	result := cmd()

	changed, ok := result.(messages.DocumentChanged)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeUpdated, changed.Change.Type)
	assert.Equal(t, testPath, changed.Change.Path)
}

func TestView_WaitForChange_DeliversError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	changes := make(chan domain.Change)
	errs := make(chan error, 1)
	errs <- errors.New("watcher overflow")
	view.Update(watchStarted{changes: changes, errs: errs})

	cmd := view.waitForChange()

	require.NotNil(t, cmd)
	result := cmd()

	failed, ok := result.(messages.WatchFailed)
	require.True(t, ok)
	assert.Error(t, failed.Err)
}

func TestView_WaitForChange_ClosedChannel(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	changes := make(chan domain.Change)
	errs := make(chan error)
	close(changes)
	view.Update(watchStarted{changes: changes, errs: errs})

	cmd := view.waitForChange()

	require.NotNil(t, cmd)
	result := cmd()

	assert.IsType(t, messages.WatchStopped{}, result)
}

// View rendering tests

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	output := view.View()

	assert.Contains(t, output, "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "grepl")
	assert.Contains(t, output, "Search")
	assert.Contains(t, output, testPath)
}

func TestView_View_WithError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)
	view.err = errors.New("test error")

	output := view.View()

	assert.Contains(t, output, "Error")
	assert.Contains(t, output, "test error")
}

func TestView_View_WithMatches(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(120, 24)
	view.Update(messages.SearchCompleted{Set: poemSet()})

	output := view.View()

	assert.Contains(t, output, "Who are you?")
	assert.Contains(t, output, "2 matches")
}

func TestView_View_EmptyResult(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Set: domain.MatchSet{Path: testPath, Query: "zzz"}})

	output := view.View()

	assert.Contains(t, output, "No matching lines")
	assert.Contains(t, output, "0 matches")
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	view.SetDimensions(100, 50)

	assert.Equal(t, 100, view.Width())
	assert.Equal(t, 50, view.Height())
	assert.True(t, view.Ready())
}

func TestView_Width(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Equal(t, 80, view.Width()) // Default
}

func TestView_Height(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Equal(t, 24, view.Height()) // Default
}

func TestView_Ready(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.False(t, view.Ready())

	view.SetDimensions(80, 24)
	assert.True(t, view.Ready())
}

func TestView_Query(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Equal(t, "", view.Query())
}

func TestView_SetQuery(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	view.SetQuery("test query")

	assert.Equal(t, "test query", view.Query())
}

func TestView_SetIgnoreCase(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	view.SetIgnoreCase(true)

	assert.True(t, view.IgnoreCase())
	assert.True(t, view.Statusbar().IgnoreCase())
}

func TestView_Matches(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Nil(t, view.Matches())
}

func TestView_SelectedIndex(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_SelectedMatch_Empty(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Nil(t, view.SelectedMatch())
}

func TestView_SelectedMatch_WithMatches(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.Update(messages.SearchCompleted{Set: poemSet()})

	match := view.SelectedMatch()

	require.NotNil(t, match)
	assert.Equal(t, 1, match.Number)
}

func TestView_Err(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)

	assert.Nil(t, view.Err())
}

func TestView_ClearError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.err = errors.New("some error")
	view.Statusbar().SetState(status.StateError)

	view.ClearError()

	assert.Nil(t, view.Err())
	assert.Equal(t, status.StateReady, view.Statusbar().State())
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)
	view.SetQuery("test query")
	view.Update(messages.SearchCompleted{Set: poemSet()})
	view.err = errors.New("test error")

	view.Reset()

	assert.Equal(t, "", view.Query())
	assert.Empty(t, view.Matches())
	assert.Nil(t, view.Err())
	assert.Equal(t, status.StateReady, view.Statusbar().State())
	assert.Equal(t, 0, view.Statusbar().MatchCount())
}

func TestView_Update_ForwardsToComponents(t *testing.T) {
	view := NewView(nil, nil, nil, nil, testPath)
	view.SetDimensions(80, 24)

	// A message type the view has no case for falls through to the
	// components without blowing up.
	type customMsg struct{}
	msg := customMsg{}

	updated, _ := view.Update(msg)

	assert.Equal(t, view, updated)
}

func TestView_LiveSearchCycle(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	view.SetDimensions(120, 24)

	// Typing schedules a search and flips the status bar to searching.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, 1, view.Seq())
	assert.Equal(t, status.StateSearching, view.Statusbar().State())

	// The result tagged with the current seq lands.
	view.Update(messages.SearchCompleted{Seq: view.Seq(), Set: poemSet()})
	assert.Len(t, view.Matches(), 2)
	assert.Equal(t, status.StateResults, view.Statusbar().State())

	// A further keystroke supersedes it.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	assert.Equal(t, 2, view.Seq())

	// The superseded search finishing late changes nothing.
	view.Update(messages.SearchCompleted{Seq: 1, Set: domain.MatchSet{Path: testPath}})
	assert.Len(t, view.Matches(), 2)
}

func TestView_WatchCycle(t *testing.T) {
	view := NewView(nil, nil, &MockSearchService{}, nil, testPath)
	changes := make(chan domain.Change, 1)
	errs := make(chan error)

	view.Update(watchStarted{changes: changes, errs: errs})
	require.True(t, view.Watching())

	// A file change re-runs the search and re-arms the wait.
	seqBefore := view.Seq()
	changes <- domain.Change{Type: domain.ChangeUpdated, Path: testPath}
	result := view.waitForChange()()
	_, cmd := view.Update(result)

	assert.Equal(t, seqBefore+1, view.Seq())
	assert.NotNil(t, cmd)

	// The watch shutting down stops the cycle.
	close(changes)
	result = view.waitForChange()()
	view.Update(result)

	assert.False(t, view.Watching())
}
