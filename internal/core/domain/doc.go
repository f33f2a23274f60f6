// Package domain holds the types the rest of grepl is built around:
//
//   - Document: the full text content loaded from a file path
//   - SearchRequest: one search invocation (query, path, options)
//   - Match / MatchSet: the ordered lines containing the query
//   - Settings: persisted defaults applied to every invocation
//
// The package sits at the centre of the hexagon, so it imports nothing
// but the standard library. Services and adapters all depend on it;
// it depends on none of them.
package domain
