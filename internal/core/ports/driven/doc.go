// Package driven holds the interfaces core calls out through: the
// services name what they need here, and the adapter packages supply
// implementations.
//
// DocumentSource and ConfigStore must always be wired. DocumentStore
// and ResultWriter may be nil: without a store the MCP document
// surfaces re-load through the source on every read, and only the CLI
// constructs writers.
//
// The package may import domain and nothing else; adapter packages are
// off limits in both directions.
package driven
