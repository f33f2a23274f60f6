package driven

import (
	"context"

	"github.com/custodia-labs/grepl/internal/core/domain"
)

// DocumentSource loads document content from the local filesystem.
// The file handle is acquired for the duration of one Load and released
// on every exit path, including errors.
type DocumentSource interface {
	// Load reads the file at path into an immutable Document.
	// Content that is not valid UTF-8 fails with domain.ErrInvalidEncoding.
	Load(ctx context.Context, path string) (domain.Document, error)

	// Watch listens for changes to the file at path.
	// Returns a channel of change events and a channel of watch errors.
	// Both channels close when the context is cancelled.
	Watch(ctx context.Context, path string) (<-chan domain.Change, <-chan error, error)
}
