package tui

import "errors"

// Construction errors, surfaced before the bubbletea program starts.
var (
	// ErrMissingSearchService is returned when no search service is wired.
	ErrMissingSearchService = errors.New("tui: search service is required")

	// ErrMissingPath is returned when no file path is given to search.
	ErrMissingPath = errors.New("tui: a file path is required")

	// ErrInvalidPorts tags every ports validation failure, so callers can
	// match the category without naming the missing service.
	ErrInvalidPorts = errors.New("tui: invalid ports configuration")
)
