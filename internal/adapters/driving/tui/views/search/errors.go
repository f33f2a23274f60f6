package search

import "errors"

// ErrNoSearchService is returned by the view when it was built without
// a search service to run queries against.
var ErrNoSearchService = errors.New("search service is required")
