package cli

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/grepl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/services"
)

// --- Test helpers ---

const testPoem = "I'm nobody! Who are you?\n" +
	"Are you nobody, too?\n" +
	"Then there's a pair of us - don't tell!\n" +
	"They'd banish us, you know.\n"

// stubDocumentSource serves a fixed document body for any path. Watch
// hands out the configured channels, or immediately-closed ones when
// none are set.
type stubDocumentSource struct {
	content string
	loadErr error
	changes chan domain.Change
	errs    chan error
}

func (s *stubDocumentSource) Load(_ context.Context, path string) (domain.Document, error) {
	if s.loadErr != nil {
		return domain.Document{}, s.loadErr
	}
	return domain.Document{
		ID:       "doc-test",
		Path:     path,
		Content:  s.content,
		LoadedAt: time.Now(),
	}, nil
}

func (s *stubDocumentSource) Watch(_ context.Context, _ string) (<-chan domain.Change, <-chan error, error) {
	if s.changes == nil {
		changes := make(chan domain.Change)
		close(changes)
		errs := make(chan error)
		close(errs)
		return changes, errs, nil
	}
	return s.changes, s.errs, nil
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(context.Context, domain.SearchRequest) (domain.MatchSet, error) {
	return domain.MatchSet{}, errors.New("backend unavailable")
}

// setupTestServices points the commands at in-memory services seeded
// with a small poem and returns a cleanup restoring the previous
// wiring and flag state.
func setupTestServices() func() {
	prevSearch := searchService
	prevSettings := settingsService
	prevSource := documentSource
	prevDocs := documentStore

	source := &stubDocumentSource{content: testPoem}
	store := memory.NewDocumentStore()

	documentSource = source
	documentStore = store
	searchService = services.NewSearchService(source, store)
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		searchService = prevSearch
		settingsService = prevSettings
		documentSource = prevSource
		documentStore = prevDocs
		resetSearchFlags()
	}
}

// resetSearchFlags returns the root command's flags to their defaults.
// Cobra keeps flag values and Changed markers across Execute calls, so
// without this one test's flags would leak into the next.
func resetSearchFlags() {
	searchIgnoreCase = false
	searchRegex = false
	searchLineNumbers = false
	searchCount = false
	searchMaxCount = 0
	searchJSON = false
	searchColour = ""
	searchWatch = false
	rootVerbose = false

	for _, name := range []string{
		"ignore-case", "regex", "line-number", "count",
		"max-count", "json", "colour", "watch",
	} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	if f := rootCmd.PersistentFlags().Lookup("verbose"); f != nil {
		f.Changed = false
	}
}
