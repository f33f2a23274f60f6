package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
)

var _ driven.ResultWriter = (*JSONWriter)(nil)

// JSONWriter renders a match set as a single indented JSON document
// followed by a newline.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSON writer targeting out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// matchPayload is the wire form of a single matching line.
type matchPayload struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// resultPayload is the wire form of a match set.
type resultPayload struct {
	DocumentID string         `json:"document_id"`
	Path       string         `json:"path"`
	Query      string         `json:"query"`
	Total      int            `json:"total"`
	Matches    []matchPayload `json:"matches"`
}

// Write encodes the match set as JSON.
func (w *JSONWriter) Write(set domain.MatchSet) error {
	payload := resultPayload{
		DocumentID: set.DocumentID,
		Path:       set.Path,
		Query:      set.Query,
		Total:      set.Count(),
		Matches:    make([]matchPayload, 0, len(set.Matches)),
	}
	for _, match := range set.Matches {
		payload.Matches = append(payload.Matches, matchPayload{
			Line: match.Number,
			Text: match.Text,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
