// Package tui provides the interactive live-search terminal interface.
// It is a driving adapter: keystrokes become search requests, and the
// results render through bubbletea.
package tui

import (
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
)

// Ports aggregates the services the TUI drives. Only Search is
// required; without Settings the view starts from defaults, and
// without Source file changes go unnoticed.
type Ports struct {
	// Search provides line search over a document.
	Search driving.SearchService

	// Settings supplies the persisted defaults, such as the initial
	// case sensitivity.
	Settings driving.SettingsService

	// Source watches the file for changes so results stay current.
	Source driven.DocumentSource
}

// NewPorts bundles the services the TUI runs against.
func NewPorts(
	search driving.SearchService,
	settings driving.SettingsService,
	source driven.DocumentSource,
) *Ports {
	return &Ports{
		Search:   search,
		Settings: settings,
		Source:   source,
	}
}

// Validate reports whether the required ports are present.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
