package domain

// SearchOptions configures how lines are matched.
type SearchOptions struct {
	// IgnoreCase normalises both line and query to lower case before
	// the containment test.
	IgnoreCase bool

	// Regex treats the query as a regular expression instead of a
	// literal substring.
	Regex bool

	// MaxCount caps the number of matches collected. Zero means
	// unlimited.
	MaxCount int
}

// SearchRequest describes one search invocation.
// It is created once from process input and immutable thereafter.
type SearchRequest struct {
	// Query is the text fragment being searched for. An empty query is
	// valid and matches every line.
	Query string

	// Path is the file to search.
	Path string

	// Options tune the matching behaviour.
	Options SearchOptions
}

// Validate checks the request invariants. An empty Query is deliberately
// allowed: containment of the empty string holds for every line.
func (r SearchRequest) Validate() error {
	if r.Path == "" {
		return ErrMissingPath
	}
	if r.Options.MaxCount < 0 {
		return ErrInvalidMaxCount
	}
	return nil
}

// Span is a byte range within a matched line where the query occurs.
type Span struct {
	// Start is the inclusive byte offset of the occurrence.
	Start int

	// End is the exclusive byte offset of the occurrence.
	End int
}

// Match is a single matching line.
type Match struct {
	// Number is the 1-based line number within the document.
	Number int

	// Text is the line exactly as it appears in the document.
	Text string

	// Spans are the query occurrences within Text, used for
	// highlighting only.
	Spans []Span
}

// MatchSet is the ordered collection of lines containing the query.
// Matches appear in document order: a subsequence of the document's
// lines, never reordered, never duplicated.
type MatchSet struct {
	// DocumentID identifies the document that was searched.
	DocumentID string

	// Path is the file the matches came from.
	Path string

	// Query is the text fragment that was searched for.
	Query string

	// Matches are the matching lines in document order.
	Matches []Match
}

// Count returns the number of matching lines.
func (m MatchSet) Count() int {
	return len(m.Matches)
}

// Lines returns just the matched line texts, in order.
func (m MatchSet) Lines() []string {
	lines := make([]string, len(m.Matches))
	for i, match := range m.Matches {
		lines[i] = match.Text
	}
	return lines
}
