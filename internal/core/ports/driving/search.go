package driving

import (
	"context"

	"github.com/custodia-labs/grepl/internal/core/domain"
)

// SearchService provides line search over a single document.
type SearchService interface {
	// Search loads the document at req.Path and returns the lines
	// containing req.Query, in document order.
	Search(ctx context.Context, req domain.SearchRequest) (domain.MatchSet, error)
}
