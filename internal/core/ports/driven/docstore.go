package driven

import (
	"context"

	"github.com/custodia-labs/grepl/internal/core/domain"
)

// DocumentStore caches loaded documents for the duration of one process.
// Nothing survives the invocation; searches keep the cache current and
// long-running surfaces such as the MCP server read from it.
type DocumentStore interface {
	// Put stores or replaces a document.
	Put(ctx context.Context, doc domain.Document) error

	// Get returns the document with the given ID, or
	// domain.ErrNotFound if nothing by that ID is cached.
	Get(ctx context.Context, id string) (domain.Document, error)

	// GetByPath retrieves the most recently loaded document for a path.
	// Returns domain.ErrNotFound if no document for the path is cached.
	GetByPath(ctx context.Context, path string) (domain.Document, error)

	// List returns all cached documents ordered by path.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document from the cache.
	Delete(ctx context.Context, id string) error
}
