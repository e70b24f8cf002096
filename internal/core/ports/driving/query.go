package driving

import (
	"context"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// QueryService provides read-only search and filtering over the
// study collection.
type QueryService interface {
	// Search returns the studies whose authors, title, or journal
	// contains the query as a case-insensitive substring. The three
	// fields are matched independently (OR), never as a joined string.
	// An empty or whitespace-only query matches nothing.
	Search(ctx context.Context, query string) ([]domain.Study, error)

	// Filter returns the studies satisfying every supplied criterion,
	// in the collection's insertion order.
	Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Study, error)
}
