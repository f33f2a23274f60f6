package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
	"github.com/custodia-labs/grepl/internal/logger"
)

var _ driving.SearchService = (*SearchService)(nil)

// matchFunc reports whether a line contains the query, along with the
// byte spans of each occurrence for highlighting.
type matchFunc func(line string) ([]domain.Span, bool)

// SearchService runs the search pipeline: load the document, scan its
// lines in order, collect the ones containing the query.
type SearchService struct {
	source driven.DocumentSource
	docs   driven.DocumentStore
}

// NewSearchService wires the pipeline to its document source. The docs
// store is optional (can be nil); when present, every loaded document
// is cached for the MCP and TUI surfaces.
func NewSearchService(source driven.DocumentSource, docs driven.DocumentStore) *SearchService {
	return &SearchService{
		source: source,
		docs:   docs,
	}
}

// Search loads the document at req.Path and returns the lines containing
// req.Query, in document order. The result is a subsequence of the
// document's lines: no line is reordered, duplicated, or mutated.
// Searching the same unchanged document twice yields identical matches.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q, path: %s", req.Query, req.Path)

	if err := req.Validate(); err != nil {
		return domain.MatchSet{}, err
	}

	if s.source == nil {
		return domain.MatchSet{}, errors.New("document source unavailable")
	}

	doc, err := s.source.Load(ctx, req.Path)
	if err != nil {
		return domain.MatchSet{}, fmt.Errorf("load document: %w", err)
	}
	logger.Debug("Loaded %d bytes, %d lines", len(doc.Content), doc.LineCount())

	if s.docs != nil {
		if err := s.docs.Put(ctx, doc); err != nil {
			logger.Warn("Document cache update failed: %v", err)
		}
	}

	match, err := buildMatcher(req.Query, req.Options)
	if err != nil {
		return domain.MatchSet{}, err
	}

	set := domain.MatchSet{
		DocumentID: doc.ID,
		Path:       doc.Path,
		Query:      req.Query,
		Matches:    []domain.Match{},
	}

	for i, line := range doc.Lines() {
		spans, ok := match(line)
		if !ok {
			continue
		}
		set.Matches = append(set.Matches, domain.Match{
			Number: i + 1,
			Text:   line,
			Spans:  spans,
		})
		if req.Options.MaxCount > 0 && len(set.Matches) >= req.Options.MaxCount {
			logger.Debug("Max count %d reached at line %d", req.Options.MaxCount, i+1)
			break
		}
	}

	logger.Info("Matches: %d", set.Count())
	return set, nil
}

// buildMatcher constructs the line test for a query.
// The empty query matches every line: containment of the empty string
// always holds, and that behaviour is part of the contract.
func buildMatcher(query string, opts domain.SearchOptions) (matchFunc, error) {
	if opts.Regex {
		flags := ""
		if opts.IgnoreCase {
			flags = "(?i)"
		}
		re, err := regexp.Compile(flags + query)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
		}
		return func(line string) ([]domain.Span, bool) {
			locs := re.FindAllStringIndex(line, -1)
			if len(locs) == 0 {
				return nil, false
			}
			spans := make([]domain.Span, 0, len(locs))
			for _, loc := range locs {
				if loc[0] == loc[1] {
					continue // zero-width match, nothing to highlight
				}
				spans = append(spans, domain.Span{Start: loc[0], End: loc[1]})
			}
			return spans, true
		}, nil
	}

	pattern := query
	if opts.IgnoreCase {
		pattern = strings.ToLower(pattern)
	}

	return func(line string) ([]domain.Span, bool) {
		haystack := line
		if opts.IgnoreCase {
			haystack = strings.ToLower(line)
		}
		if !strings.Contains(haystack, pattern) {
			return nil, false
		}
		if pattern == "" {
			return nil, true
		}
		// Case folding can change byte offsets for some scripts; spans
		// are only trustworthy when the folded length is unchanged.
		if len(haystack) != len(line) {
			return nil, true
		}
		return occurrences(haystack, pattern), true
	}, nil
}

// occurrences returns the byte spans of every non-overlapping occurrence
// of pattern within haystack. pattern must be non-empty.
func occurrences(haystack, pattern string) []domain.Span {
	var spans []domain.Span
	offset := 0
	for {
		i := strings.Index(haystack[offset:], pattern)
		if i < 0 {
			return spans
		}
		start := offset + i
		end := start + len(pattern)
		spans = append(spans, domain.Span{Start: start, End: end})
		offset = end
	}
}
