package driven

import (
	"context"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// StudyStore owns the study collection for a session.
//
// The store preserves insertion order and is the only mutable surface in
// the system; Add is the single mutator. Implementations provide no
// internal locking: access is single-threaded by contract, and callers
// sharing a store across goroutines must synchronise externally.
type StudyStore interface {
	// Add appends a study and indexes it by id. It returns
	// domain.ErrDuplicateID if the id is already present, leaving the
	// collection unchanged.
	Add(ctx context.Context, study domain.Study) error

	// Get returns the study with the given id, or domain.ErrNotFound.
	// A miss is routine, not a fault.
	Get(ctx context.Context, id int) (*domain.Study, error)

	// All returns a snapshot of the collection in insertion order.
	// The returned slice is a copy; later Adds do not alter it.
	All(ctx context.Context) ([]domain.Study, error)

	// Count returns the number of studies currently stored.
	Count(ctx context.Context) (int, error)
}
