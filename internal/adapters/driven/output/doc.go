// Package output implements driven.ResultWriter for terminal and
// machine-readable output.
//
// Writers:
//   - TextWriter: one matching line per output line, optional line
//     numbers, counts and colour highlighting
//   - JSONWriter: the whole match set as a single JSON document
package output
