package driven

import "github.com/custodia-labs/grepl/internal/core/domain"

// ResultWriter renders a MatchSet to an output stream.
// A write failure is fatal: implementations propagate the first error
// and never retry. Partial output is not a successful outcome.
type ResultWriter interface {
	// Write renders every match in set order.
	Write(set domain.MatchSet) error
}
