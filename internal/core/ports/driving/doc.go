// Package driving defines the interfaces the CLI, TUI and MCP surfaces
// call to reach the core - the "driving" ports of the hexagon.
//
// Implementations live in internal/core/services.
package driving
