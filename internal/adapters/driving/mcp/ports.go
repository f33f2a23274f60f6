package mcp

import (
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server calls into the core.
// Only Search is required; the remaining surfaces degrade gracefully
// when their port is absent.
type Ports struct {
	// Search runs line searches over documents.
	Search driving.SearchService

	// Settings exposes the persisted defaults.
	Settings driving.SettingsService

	// Source loads document content from paths.
	Source driven.DocumentSource

	// Docs is the cache of documents loaded during this session.
	Docs driven.DocumentStore
}

// Validate reports whether the required ports are present.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
