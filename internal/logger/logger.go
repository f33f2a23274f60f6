// Package logger provides verbose logging for the grepl CLI.
// When verbose mode is enabled via the --verbose flag, diagnostic messages
// are printed to stderr so users can follow the search pipeline without
// disturbing the matched lines on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose switches the diagnostic output on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostics are being written.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects verbose logs away from os.Stderr, for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug narrates pipeline internals.
func Debug(format string, args ...any) {
	emit("[DEBUG] ", format, args...)
}

// Info reports milestones such as totals.
func Info(format string, args ...any) {
	emit("[INFO] ", format, args...)
}

// Warn flags recoverable trouble the run continues past.
func Warn(format string, args ...any) {
	emit("[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled. Headers
// break the diagnostic stream into pipeline stages.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// emit writes one tagged line when verbose mode is on.
func emit(tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, tag+format+"\n", args...)
}
