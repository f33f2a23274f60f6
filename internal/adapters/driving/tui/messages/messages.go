// Package messages holds the tea.Msg types the TUI passes between its
// commands and its models.
package messages

import (
	"github.com/custodia-labs/grepl/internal/core/domain"
)

// SearchCompleted carries a finished search back to the model. Seq
// identifies which search request produced it; results from a request
// that is no longer the latest are discarded, since a keystroke may
// have started a newer one in the meantime.
type SearchCompleted struct {
	Seq int
	Set domain.MatchSet
	Err error
}

// DocumentChanged signals that the watched file changed on disk.
type DocumentChanged struct {
	Change domain.Change
}

// WatchFailed carries a transient error from the file watcher.
type WatchFailed struct {
	Err error
}

// WatchStopped signals that the file watcher shut down.
type WatchStopped struct{}

// ErrorOccurred puts an error in front of the user without ending the
// session.
type ErrorOccurred struct {
	Err error
}

// Quit asks the programme to exit.
type Quit struct{}
