package domain

import (
	"strings"
	"time"
)

// Document is the full text content loaded from a file path.
// It is immutable once loaded; search never mutates its lines.
type Document struct {
	// ID is the unique identifier assigned when the document is loaded.
	ID string

	// Path is the file path the content was read from.
	Path string

	// Content is the complete text of the file.
	Content string

	// LoadedAt is when the content was read.
	LoadedAt time.Time
}

// Lines splits Content on line-terminator boundaries.
// A line ends at "\n"; a "\r" directly before it is not part of the line.
// A trailing terminator yields no extra empty final line, and empty
// content yields no lines at all.
func (d Document) Lines() []string {
	if d.Content == "" {
		return nil
	}

	content := d.Content
	terminated := strings.HasSuffix(content, "\n")
	if terminated {
		content = content[:len(content)-1]
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		// A "\r" counts as part of the terminator only when a "\n"
		// followed it. A final line with no closing newline keeps its
		// bare "\r".
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.Lines())
}
