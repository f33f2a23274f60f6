// Package file persists settings on the local filesystem.
//
// ConfigStore keeps ~/.grepl/config.toml: settings are addressed by
// dotted key in memory and written back as nested TOML tables.
package file
