package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/grepl/internal/core/domain"
)

// SearchInput carries the search tool's arguments.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the text to look for in each line"`
	Path       string `json:"path" jsonschema:"the file to search"`
	IgnoreCase bool   `json:"ignore_case,omitempty" jsonschema:"match without regard to case"`
	Regex      bool   `json:"regex,omitempty" jsonschema:"treat the query as a regular expression"`
	MaxCount   int    `json:"max_count,omitempty" jsonschema:"stop after this many matches (0 = unlimited)"`
}

// SearchOutput is the search tool's result. The document ID keys the
// grepl://documents/{documentId} resource for follow-up reads.
type SearchOutput struct {
	DocumentID string        `json:"document_id"`
	Path       string        `json:"path"`
	Query      string        `json:"query"`
	Total      int           `json:"total"`
	Matches    []MatchOutput `json:"matches"`
}

// MatchOutput represents a single matching line.
type MatchOutput struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// ReadDocumentInput selects the file the read_document tool loads.
type ReadDocumentInput struct {
	Path string `json:"path" jsonschema:"the file to read"`
}

// ReadDocumentOutput is the read_document tool's result.
type ReadDocumentOutput struct {
	DocumentID string `json:"document_id"`
	Path       string `json:"path"`
	Lines      int    `json:"lines"`
	Content    string `json:"content"`
}

// registerTools wires the search and read_document tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Return the lines of a file that contain a query",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read the full text content of a file",
	}, s.handleReadDocument)
}

// handleSearch runs one search and shapes the result for the wire.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	req := domain.SearchRequest{
		Query: input.Query,
		Path:  input.Path,
		Options: domain.SearchOptions{
			IgnoreCase: input.IgnoreCase,
			Regex:      input.Regex,
			MaxCount:   input.MaxCount,
		},
	}

	set, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		DocumentID: set.DocumentID,
		Path:       set.Path,
		Query:      set.Query,
		Total:      set.Count(),
		Matches:    make([]MatchOutput, len(set.Matches)),
	}

	for i, match := range set.Matches {
		output.Matches[i] = MatchOutput{
			Line: match.Number,
			Text: match.Text,
		}
	}

	return nil, output, nil
}

// handleReadDocument handles the read_document tool invocation. The
// session cache is consulted first; a document loaded here is cached so
// the documents resources can serve it afterwards.
func (s *Server) handleReadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDocumentInput,
) (*mcp.CallToolResult, ReadDocumentOutput, error) {
	if s.ports.Docs != nil {
		if doc, err := s.ports.Docs.GetByPath(ctx, input.Path); err == nil {
			return nil, readDocumentOutput(doc), nil
		}
	}

	if s.ports.Source == nil {
		return nil, ReadDocumentOutput{}, errors.New("document source not configured")
	}

	doc, err := s.ports.Source.Load(ctx, input.Path)
	if err != nil {
		return nil, ReadDocumentOutput{}, err
	}
	if s.ports.Docs != nil {
		// Best effort; the read itself already succeeded.
		_ = s.ports.Docs.Put(ctx, doc)
	}

	return nil, readDocumentOutput(doc), nil
}

func readDocumentOutput(doc domain.Document) ReadDocumentOutput {
	return ReadDocumentOutput{
		DocumentID: doc.ID,
		Path:       doc.Path,
		Lines:      doc.LineCount(),
		Content:    doc.Content,
	}
}
