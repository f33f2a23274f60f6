package domain

import "errors"

// Sentinels for the failures callers branch on. Infrastructure errors
// arrive wrapped around these or pass through untouched.
var (
	// ErrMissingQuery indicates no search query argument was provided.
	// Distinct from an empty query string, which is valid input.
	ErrMissingQuery = errors.New("missing search query")

	// ErrMissingPath indicates no file path argument was provided.
	ErrMissingPath = errors.New("missing file path")

	// ErrInvalidPattern indicates the query is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrInvalidEncoding indicates the document is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrInvalidMaxCount indicates a negative match limit.
	ErrInvalidMaxCount = errors.New("invalid max count")

	// ErrNotFound indicates a requested document is not in the cache.
	ErrNotFound = errors.New("not found")

	// ErrUnknownSetting indicates an unrecognised settings key.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidSettingValue indicates a value that does not parse for its key.
	ErrInvalidSettingValue = errors.New("invalid setting value")
)
