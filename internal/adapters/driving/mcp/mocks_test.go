package mcp

import (
	"context"

	"github.com/custodia-labs/grepl/internal/core/domain"
)

// mockSearchService answers every search with a canned result.
type mockSearchService struct {
	set domain.MatchSet
	err error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ domain.SearchRequest,
) (domain.MatchSet, error) {
	return m.set, m.err
}

// mockSettingsService hands back canned settings and values.
type mockSettingsService struct {
	settings domain.Settings
	values   []domain.SettingValue
	err      error
}

func (m *mockSettingsService) Settings() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Get(_ string) (string, error) {
	return "", m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) List() ([]domain.SettingValue, error) {
	return m.values, m.err
}

// mockDocumentSource serves one canned document. Its Watch hands back
// already-closed channels.
type mockDocumentSource struct {
	doc domain.Document
	err error
}

func (m *mockDocumentSource) Load(_ context.Context, path string) (domain.Document, error) {
	if m.err != nil {
		return domain.Document{}, m.err
	}
	doc := m.doc
	if doc.Path == "" {
		doc.Path = path
	}
	return doc, nil
}

func (m *mockDocumentSource) Watch(_ context.Context, _ string) (<-chan domain.Change, <-chan error, error) {
	changes := make(chan domain.Change)
	close(changes)
	errs := make(chan error)
	close(errs)
	return changes, errs, nil
}
