// Package mcp serves grepl searches over the Model Context Protocol,
// so MCP clients can run queries and read matched documents without
// shelling out to the CLI.
package mcp

import "errors"

// ErrMissingSearchService is returned when a server is built without a
// search service.
var ErrMissingSearchService = errors.New("mcp: search service is required")
