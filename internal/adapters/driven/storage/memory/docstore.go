package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
)

var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore caches loaded documents in memory, indexed by ID and by
// path. Storing a document replaces any earlier document loaded from
// the same path.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	byPath    map[string]string
}

// NewDocumentStore returns an empty cache.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		byPath:    make(map[string]string),
	}
}

// Put stores or updates a document.
func (s *DocumentStore) Put(_ context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.byPath[doc.Path]; ok && previous != doc.ID {
		delete(s.documents, previous)
	}

	s.documents[doc.ID] = doc
	s.byPath[doc.Path] = doc.ID
	return nil
}

// Get returns the document with the given ID.
func (s *DocumentStore) Get(_ context.Context, id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return domain.Document{}, domain.ErrNotFound
	}
	return doc, nil
}

// GetByPath retrieves the most recently stored document for a path.
func (s *DocumentStore) GetByPath(_ context.Context, path string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPath[path]
	if !ok {
		return domain.Document{}, domain.ErrNotFound
	}
	return s.documents[id], nil
}

// List returns all stored documents ordered by path.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		result = append(result, s.documents[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result, nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil
	}

	delete(s.documents, id)
	if s.byPath[doc.Path] == id {
		delete(s.byPath, doc.Path)
	}
	return nil
}
